package database

import (
	"context"
	"testing"

	"homeez_booking/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local"}
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	cfg := config.Config{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}
	client, err := ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint override, got %v", got)
	}
}
