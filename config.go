// Copyright © 2026 Weald Technology Trading.
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
	"io"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a directory.
//
//	name: main
//	logLevel: debug
//	brokers:
//	  - kafka1.example.com
//	  - kafka2.example.com:9093
//	topics:
//	  events:
//	    0: kafka1.example.com
//	    1: kafka2.example.com:9093
type Config struct {
	Name     string                        `yaml:"name"`
	LogLevel string                        `yaml:"logLevel,omitempty"`
	Brokers  Endpoints                     `yaml:"brokers"`
	Topics   map[string]map[int32]Endpoint `yaml:"topics,omitempty"`
}

// ReadConfig reads a YAML directory configuration.
func ReadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configuration")
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	return config, nil
}

// Parameters converts the configuration to parameters for Open.
func (c *Config) Parameters() ([]Parameter, error) {
	params := []Parameter{
		WithName(c.Name),
		WithEndpoints(c.Brokers...),
	}
	if c.LogLevel != "" {
		logLevel, err := zerolog.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "invalid log level")
		}
		params = append(params, WithLogLevel(logLevel))
	}
	for _, topic := range slices.Sorted(maps.Keys(c.Topics)) {
		partitionMap, err := NewPartitionMap(topic, c.Topics[topic])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid partitions for topic %s", topic)
		}
		params = append(params, WithPartitionMap(partitionMap))
	}

	return params, nil
}
