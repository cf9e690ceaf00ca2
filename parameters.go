// Copyright © 2022 - 2026 Weald Technology Trading.
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
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel      zerolog.Level
	monitor       Metrics
	name          string
	endpoints     Endpoints
	specs         []string
	partitionMaps []*PartitionMap
}

// Parameter is the interface for service parameters.
type Parameter interface {
	apply(*parameters)
}

type parameterFunc func(*parameters)

func (f parameterFunc) apply(p *parameters) {
	f(p)
}

// WithLogLevel sets the log level for the directory.
func WithLogLevel(logLevel zerolog.Level) Parameter {
	return parameterFunc(func(p *parameters) {
		p.logLevel = logLevel
	})
}

// WithMonitor sets the monitor for the directory.
func WithMonitor(monitor Metrics) Parameter {
	return parameterFunc(func(p *parameters) {
		p.monitor = monitor
	})
}

// WithName sets the name for the directory.
func WithName(name string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.name = name
	})
}

// WithEndpoints adds endpoints to the directory.
func WithEndpoints(endpoints ...Endpoint) Parameter {
	return parameterFunc(func(p *parameters) {
		p.endpoints = append(p.endpoints, endpoints...)
	})
}

// WithSpecs adds endpoints to the directory in host or host:port form.
// Each spec may itself be a comma-separated list.
func WithSpecs(specs ...string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.specs = append(p.specs, specs...)
	})
}

// WithPartitionMap adds the partition leaders of a topic to the directory.
func WithPartitionMap(partitionMap *PartitionMap) Parameter {
	return parameterFunc(func(p *parameters) {
		p.partitionMaps = append(p.partitionMaps, partitionMap)
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
		monitor:  &nullMetrics{},
	}
	for _, p := range params {
		if p != nil {
			p.apply(&parameters)
		}
	}

	if parameters.name == "" {
		return nil, errors.New("no name specified")
	}
	for _, spec := range parameters.specs {
		endpoints, err := ParseEndpoints(spec)
		if err != nil {
			return nil, errors.Wrap(err, "invalid endpoint specification")
		}
		for _, endpoint := range endpoints {
			if endpoint.IsZero() {
				return nil, errors.Errorf("empty endpoint in specification %q", spec)
			}
		}
		parameters.endpoints = append(parameters.endpoints, endpoints...)
	}
	if len(parameters.endpoints) == 0 {
		return nil, errors.New("no endpoints specified")
	}
	for _, endpoint := range parameters.endpoints {
		if endpoint.IsZero() {
			return nil, errors.New("empty endpoint specified")
		}
	}
	topics := make(map[string]struct{}, len(parameters.partitionMaps))
	for _, partitionMap := range parameters.partitionMaps {
		if partitionMap == nil {
			return nil, errors.New("nil partition map specified")
		}
		if _, exists := topics[partitionMap.Topic()]; exists {
			return nil, errors.Errorf("duplicate partition map for topic %s", partitionMap.Topic())
		}
		topics[partitionMap.Topic()] = struct{}{}
		for _, leader := range partitionMap.Brokers() {
			if !parameters.endpoints.Contains(leader) {
				return nil, errors.Errorf("leader %s for topic %s is not a known endpoint", leader, partitionMap.Topic())
			}
		}
	}

	return &parameters, nil
}
