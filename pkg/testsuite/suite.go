package testsuite

import (
	"context"
	"log"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// BaseSuite spins up throwaway MongoDB and Redis containers and hands out
// connected clients for integration tests.
type BaseSuite struct {
	suite.Suite
	MongoContainer *mongodb.MongoDBContainer
	RedisContainer *tcredis.RedisContainer
	MongoClient    *mongo.Client
	Database       *mongo.Database
	Redis          *goredis.Client
	Ctx            context.Context
}

func (s *BaseSuite) SetupInfrastructure(databaseName string) {
	s.Ctx = context.Background()

	var err error
	s.MongoContainer, err = mongodb.Run(s.Ctx, "mongo:7")
	s.Require().NoError(err)

	mongoURI, err := s.MongoContainer.ConnectionString(s.Ctx)
	s.Require().NoError(err)

	s.MongoClient, err = mongo.Connect(s.Ctx, options.Client().ApplyURI(mongoURI))
	s.Require().NoError(err)
	s.Require().NoError(s.MongoClient.Ping(s.Ctx, readpref.Primary()))

	s.Database = s.MongoClient.Database(databaseName)

	s.RedisContainer, err = tcredis.Run(s.Ctx, "redis:7-alpine")
	s.Require().NoError(err)

	redisURI, err := s.RedisContainer.ConnectionString(s.Ctx)
	s.Require().NoError(err)

	redisOpts, err := goredis.ParseURL(redisURI)
	s.Require().NoError(err)

	s.Redis = goredis.NewClient(redisOpts)
	s.Require().NoError(s.Redis.Ping(s.Ctx).Err())
}

func (s *BaseSuite) TearDownInfrastructure() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}
	if s.MongoClient != nil {
		if err := s.MongoClient.Disconnect(s.Ctx); err != nil {
			log.Printf("Failed to disconnect mongo client: %v", err)
		}
	}
	if s.RedisContainer != nil {
		if err := s.RedisContainer.Terminate(s.Ctx); err != nil {
			log.Printf("Failed to terminate redis container: %v", err)
		}
	}
	if s.MongoContainer != nil {
		if err := s.MongoContainer.Terminate(s.Ctx); err != nil {
			log.Printf("Failed to terminate mongo container: %v", err)
		}
	}
}

// DropCollection resets one collection between tests.
func (s *BaseSuite) DropCollection(name string) {
	s.Require().NoError(s.Database.Collection(name).Drop(s.Ctx))
}
