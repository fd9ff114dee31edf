package otel

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Disabled(t *testing.T) {
	os.Setenv("OTEL_SDK_DISABLED", "true")
	defer os.Unsetenv("OTEL_SDK_DISABLED")

	shutdown, err := Init(context.Background(), time.UTC)

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSamplerFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		sampler string
		arg     string
		want    trace.Sampler
	}{
		{name: "default", want: trace.ParentBased(trace.AlwaysSample())},
		{name: "always on", sampler: "always_on", want: trace.AlwaysSample()},
		{name: "always off", sampler: "always_off", want: trace.NeverSample()},
		{name: "ratio", sampler: "traceidratio", arg: "0.25", want: trace.TraceIDRatioBased(0.25)},
		{name: "parent based ratio", sampler: "parentbased_traceidratio", arg: "0.5", want: trace.ParentBased(trace.TraceIDRatioBased(0.5))},
		{name: "bad arg falls back to 1.0", sampler: "traceidratio", arg: "not-a-number", want: trace.TraceIDRatioBased(1.0)},
		{name: "unknown sampler", sampler: "mystery", want: trace.ParentBased(trace.AlwaysSample())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("OTEL_TRACES_SAMPLER")
			os.Unsetenv("OTEL_TRACES_SAMPLER_ARG")
			if tt.sampler != "" {
				os.Setenv("OTEL_TRACES_SAMPLER", tt.sampler)
				defer os.Unsetenv("OTEL_TRACES_SAMPLER")
			}
			if tt.arg != "" {
				os.Setenv("OTEL_TRACES_SAMPLER_ARG", tt.arg)
				defer os.Unsetenv("OTEL_TRACES_SAMPLER_ARG")
			}

			assert.Equal(t, tt.want.Description(), samplerFromEnv().Description())
		})
	}
}
