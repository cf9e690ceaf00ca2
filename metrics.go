// Copyright © 2022 - 2026 Weald Technology Limited.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package broker

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	directoryEndpoints   *prometheus.GaugeVec
	directoryEndpointsMu sync.Mutex
)

func registerMetrics(ctx context.Context, monitor Metrics) error {
	directoryEndpointsMu.Lock()
	defer directoryEndpointsMu.Unlock()

	if directoryEndpoints != nil {
		// Already registered.
		return nil
	}
	if monitor == nil {
		// No monitor.
		return nil
	}
	if monitor.Presenter() == "prometheus" {
		return registerPrometheusMetrics(ctx)
	}

	return nil
}

func registerPrometheusMetrics(_ context.Context) error {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kafka",
		Subsystem: "broker",
		Name:      "directory_endpoints",
		Help:      "Broker endpoints held by a directory",
	}, []string{"directory"})
	if err := prometheus.Register(gauge); err != nil {
		return errors.Wrap(err, "failed to register kafka_broker_directory_endpoints")
	}
	directoryEndpoints = gauge

	return nil
}

// setDirectoryEndpoints publishes the endpoint count only for directories
// opened with a prometheus monitor.
func setDirectoryEndpoints(monitor Metrics, name string, count int) {
	if monitor == nil || monitor.Presenter() != "prometheus" {
		return
	}
	directoryEndpointsMu.Lock()
	defer directoryEndpointsMu.Unlock()
	if directoryEndpoints != nil {
		directoryEndpoints.WithLabelValues(name).Set(float64(count))
	}
}

// Metrics is an interface to a metrics provider.
type Metrics interface {
	// Presenter returns the presenter for the metrics.
	Presenter() string
}

type nullMetrics struct{}

// Presenter returns the presenter for the metrics.
func (m *nullMetrics) Presenter() string {
	return "null"
}
