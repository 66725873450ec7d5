// Package tracing sets up opencensus tracing of keymanager API requests.
package tracing

import (
	"contrib.go.opencensus.io/exporter/jaeger"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/runtime/version"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "tracing")

// Setup samples the given fraction of commands and exports their spans to a Jaeger collector.
// When tracing is disabled, spans are still created but never sampled.
func Setup(serviceName, collectorEndpoint string, sampleFraction float64, enable bool) error {
	if !enable {
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.NeverSample()})
		return nil
	}
	if serviceName == "" {
		return errors.New("tracing service name cannot be empty")
	}
	if sampleFraction < 0 || sampleFraction > 1 {
		return errors.Errorf("trace sample fraction must be between 0 and 1, got %v", sampleFraction)
	}

	exporter, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: collectorEndpoint,
		Process: jaeger.Process{
			ServiceName: serviceName,
			Tags:        []jaeger.Tag{jaeger.StringTag("build", version.BuildData())},
		},
		OnError: func(err error) {
			log.WithError(err).Debug("Could not export spans")
		},
	})
	if err != nil {
		return errors.Wrap(err, "could not create jaeger exporter")
	}
	trace.RegisterExporter(exporter)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(sampleFraction)})
	log.WithFields(logrus.Fields{
		"service":        serviceName,
		"endpoint":       collectorEndpoint,
		"sampleFraction": sampleFraction,
	}).Info("Tracing keymanager API requests")
	return nil
}
