package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds whichever backend the cart snapshots are kept in.
// Only one of Postgres and MongoDB is set.
type Database struct {
	Postgres *gorm.DB
	MongoDB  *mongo.Database
}

func NewPostgresDatabase(url string, log *zap.Logger) (*Database, error) {
	db, err := initPostgreSQL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("connected to postgres")
	return &Database{Postgres: db}, nil
}

func NewMongoDatabase(url, dbName string, log *zap.Logger) (*Database, error) {
	db, err := initMongoDB(url, dbName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	log.Info("connected to mongodb", zap.String("database", dbName))
	return &Database{MongoDB: db}, nil
}

func initPostgreSQL(url string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(url), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func initMongoDB(url, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(dbName), nil
}

// AutoMigrate creates the tables the PostgreSQL backend needs.
func (db *Database) AutoMigrate(models ...interface{}) error {
	if db.Postgres == nil {
		return nil
	}
	return db.Postgres.AutoMigrate(models...)
}

func (db *Database) Close() error {
	if db.Postgres != nil {
		if sqlDB, err := db.Postgres.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if db.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return db.MongoDB.Client().Disconnect(ctx)
	}

	return nil
}
