// Copyright © 2020 - 2026 Weald Technology Trading.
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
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Directory is a read-only set of known brokers, optionally with the
// partition leaders of some topics.
type Directory struct {
	log           zerolog.Logger
	name          string
	endpoints     Endpoints
	partitionMaps map[string]*PartitionMap
}

// Open creates a directory from the supplied parameters.
func Open(ctx context.Context,
	params ...Parameter,
) (
	*Directory,
	error,
) {
	ctx, span := otel.Tracer("wealdtech.kafka.broker").Start(ctx, "Open")
	defer span.End()

	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "problem with parameters")

		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log := zerologger.With().Str("service", "directory").Str("impl", "static").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to register metrics")

		return nil, errors.Wrap(err, "failed to register metrics")
	}

	directory := &Directory{
		log:           log,
		name:          parameters.name,
		endpoints:     parameters.endpoints.Unique(),
		partitionMaps: make(map[string]*PartitionMap, len(parameters.partitionMaps)),
	}
	for _, partitionMap := range parameters.partitionMaps {
		directory.partitionMaps[partitionMap.Topic()] = partitionMap
	}
	if len(directory.endpoints) != len(parameters.endpoints) {
		directory.log.Debug().Int("supplied", len(parameters.endpoints)).Int("unique", len(directory.endpoints)).Msg("Duplicate endpoints ignored")
	}

	span.SetAttributes(
		attribute.String("name", directory.name),
		attribute.Int("endpoints", len(directory.endpoints)),
		attribute.Int("topics", len(directory.partitionMaps)),
	)
	span.AddEvent("opened", trace.WithAttributes(attribute.String("endpoints", directory.endpoints.String())))
	setDirectoryEndpoints(parameters.monitor, directory.name, len(directory.endpoints))
	directory.log.Trace().Str("name", directory.name).Stringer("endpoints", directory.endpoints).Msg("Opened directory")

	return directory, nil
}

// Name provides the name of the directory.
func (d *Directory) Name() string {
	return d.name
}

// Endpoints provides the brokers in the directory, sorted.
func (d *Directory) Endpoints() Endpoints {
	return slices.Clone(d.endpoints)
}

// Contains returns true if the endpoint is in the directory.
func (d *Directory) Contains(endpoint Endpoint) bool {
	_, found := slices.BinarySearchFunc(d.endpoints, endpoint, Endpoint.Compare)

	return found
}

// Topics provides the topics with known partition leaders, sorted.
func (d *Directory) Topics() []string {
	return slices.Sorted(maps.Keys(d.partitionMaps))
}

// PartitionMap provides the partition leaders for the given topic.
func (d *Directory) PartitionMap(topic string) (*PartitionMap, bool) {
	partitionMap, exists := d.partitionMaps[topic]
	if !exists {
		d.log.Trace().Str("topic", topic).Msg("Unknown topic")
	}

	return partitionMap, exists
}
