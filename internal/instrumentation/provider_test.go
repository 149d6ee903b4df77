package instrumentation

import (
	"context"
	"testing"
	"time"
)

func TestNewProvider_Disabled(t *testing.T) {
	config := Config{
		ServiceName:    "google-mail-test",
		ServiceVersion: "0.0.1",
		Enabled:        false,
	}

	provider, err := NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if provider == nil {
		t.Fatal("NewProvider() returned nil provider")
	}

	if provider.Enabled() {
		t.Error("disabled config produced an enabled provider")
	}

	// Metrics must still be usable as no-ops when disabled
	if provider.Metrics() == nil {
		t.Error("Metrics() = nil for disabled provider")
	}
	if provider.Tracer("test") == nil {
		t.Error("Tracer() = nil for disabled provider")
	}

	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewProvider_PrometheusExporter(t *testing.T) {
	config := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	if !provider.Enabled() {
		t.Error("enabled config produced a disabled provider")
	}
	if provider.Metrics() == nil {
		t.Error("Metrics() = nil")
	}
	if provider.PrometheusHandler() == nil {
		t.Error("PrometheusHandler() = nil for prometheus exporter")
	}
}

func TestNewProvider_StdoutExporter(t *testing.T) {
	config := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "stdout",
		TracingExporter: "stdout",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	if !provider.Enabled() {
		t.Error("enabled config produced a disabled provider")
	}
	if provider.PrometheusHandler() != nil {
		t.Error("PrometheusHandler() != nil for stdout exporter")
	}
}

func TestNewProvider_InvalidExporters(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	badMetrics := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "graphite",
		TracingExporter: "none",
	}
	if _, err := NewProvider(ctx, badMetrics); err == nil {
		t.Error("NewProvider() accepted unknown metrics exporter")
	}

	badTracing := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "zipkin",
	}
	if _, err := NewProvider(ctx, badTracing); err == nil {
		t.Error("NewProvider() accepted unknown tracing exporter")
	}
}

func TestNewProvider_OTLPTracingRequiresEndpoint(t *testing.T) {
	config := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "otlp",
		OTLPEndpoint:    "",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := NewProvider(ctx, config); err == nil {
		t.Error("NewProvider() accepted otlp tracing without an endpoint")
	}
}

func TestProvider_Shutdown(t *testing.T) {
	config := Config{
		ServiceName:     "google-mail-test",
		ServiceVersion:  "0.0.1",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}

	ctx := context.Background()
	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
