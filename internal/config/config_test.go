package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadClientConfig(t *testing.T) {
	conf, err := ReadClientConfig("testdata/client.yaml")
	if err != nil {
		t.Fatalf("ReadClientConfig returned error [%s]", err)
	}
	if conf == nil {
		t.Fatal("ReadClientConfig returned nil data")
	}

	expected := ClientConfig{
		TableCode: "river-rats",
		Transport: "nats",
		NatsURL:   "nats://localhost:4222",
		Name:      "alice",
		Redis: RedisConfig{
			Enabled: true,
			Host:    "localhost",
			Port:    6379,
			DB:      2,
		},
		Chat: ChatConfig{
			MessagesPerMinute: 12,
		},
	}
	if !cmp.Equal(expected, *conf) {
		t.Errorf("Unexpected config. Diff: %s", cmp.Diff(expected, *conf))
	}
	if conf.Redis.Addr() != "localhost:6379" {
		t.Errorf("Unexpected redis addr [%s]", conf.Redis.Addr())
	}
}

func TestValidateRejectsUnknownTransport(t *testing.T) {
	conf := ClientConfig{TableCode: "t", Transport: "carrier-pigeon"}
	if err := conf.Validate(); err == nil {
		t.Error("Expected validation error for unknown transport")
	}
}

func TestValidateRequiresWsURL(t *testing.T) {
	conf := ClientConfig{TableCode: "t", Transport: TransportWs}
	if err := conf.Validate(); err == nil {
		t.Error("Expected validation error for missing ws-url")
	}
}

func TestDefaults(t *testing.T) {
	conf := ClientConfig{TableCode: "t"}
	conf.applyDefaults()
	if conf.Transport != TransportNats {
		t.Errorf("Expected default transport nats, got [%s]", conf.Transport)
	}
	if conf.Chat.MessagesPerMinute != 20 {
		t.Errorf("Expected default chat throttle 20, got %d", conf.Chat.MessagesPerMinute)
	}
}
