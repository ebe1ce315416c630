package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// settingsDocID keys the single site-settings document.
const settingsDocID = "site"

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, settings *domain.SiteSettings) error
}

type settingsRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewSettingsRepository(db *mongo.Database, logger *zap.Logger) SettingsRepository {
	return &settingsRepo{
		coll:   db.Collection("settings"),
		logger: logger,
	}
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingsNotFound
		}

		r.logger.Error("failed to load settings", zap.Error(err))
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, settings *domain.SiteSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)

	doc := struct {
		ID string `bson:"_id"`
		*domain.SiteSettings `bson:",inline"`
	}{ID: settingsDocID, SiteSettings: settings}

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		r.logger.Error("failed to upsert settings", zap.Error(err))
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
