package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type Config struct {
	Port          string
	DataDir       string
	PublicURL     string
	OwnerToken    string
	StorageDriver string // fs, memory or s3
	S3            S3Config
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "./events"),
		OwnerToken:    os.Getenv("OWNER_TOKEN"),
		StorageDriver: getEnv("STORAGE_DRIVER", "fs"),
	}
	cfg.PublicURL = getEnv("PUBLIC_URL", "http://localhost:"+cfg.Port)

	if cfg.OwnerToken == "" {
		return nil, fmt.Errorf("OWNER_TOKEN is required")
	}

	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.Region = getEnv("S3_REGION", "auto")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")

	if cfg.StorageDriver == "s3" && cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
