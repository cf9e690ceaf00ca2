// Copyright © 2026 Weald Technology Trading
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

package broker_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	broker "github.com/wealdtech/go-kafka-broker"
	"gopkg.in/yaml.v3"
)

const testConfig = `
name: main
logLevel: debug
brokers:
  - kafka1.example.com
  - kafka2.example.com:9093
topics:
  events:
    0: kafka1.example.com
    1: kafka2.example.com:9093
  audit:
    0: kafka2.example.com:9093
`

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{
			name: "Empty",
			data: "",
		},
		{
			name: "Good",
			data: testConfig,
		},
		{
			name: "BrokerBad",
			data: "name: main\nbrokers:\n  - a:b:c\n",
			err:  `failed to parse configuration: invalid host specification: "a:b:c"`,
		},
		{
			name: "Malformed",
			data: "name: [",
			err:  "failed to parse configuration: yaml: ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := broker.ReadConfig(strings.NewReader(test.data))
			if test.err != "" {
				require.ErrorContains(t, err, test.err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigOpen(t *testing.T) {
	kafka1 := broker.NewEndpointWithDefaultPort("kafka1.example.com")
	kafka2 := broker.NewEndpoint("kafka2.example.com", 9093)

	config, err := broker.ReadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	assert.Equal(t, "main", config.Name)
	assert.Equal(t, broker.Endpoints{kafka1, kafka2}, config.Brokers)
	assert.Equal(t, map[int32]broker.Endpoint{0: kafka1, 1: kafka2}, config.Topics["events"])

	params, err := config.Parameters()
	require.NoError(t, err)
	directory, err := broker.Open(context.Background(), params...)
	require.NoError(t, err)
	assert.Equal(t, "main", directory.Name())
	assert.Equal(t, broker.Endpoints{kafka1, kafka2}, directory.Endpoints())
	assert.Equal(t, []string{"audit", "events"}, directory.Topics())
	leader, exists := func() (broker.Endpoint, bool) {
		partitionMap, exists := directory.PartitionMap("audit")
		require.True(t, exists)

		return partitionMap.Leader(0)
	}()
	require.True(t, exists)
	assert.Equal(t, kafka2, leader)
}

func TestConfigParameters(t *testing.T) {
	tests := []struct {
		name   string
		config *broker.Config
		err    string
	}{
		{
			name: "LogLevelBad",
			config: &broker.Config{
				Name:     "main",
				LogLevel: "loud",
			},
			err: "invalid log level: ",
		},
		{
			name: "TopicBad",
			config: &broker.Config{
				Name: "main",
				Topics: map[string]map[int32]broker.Endpoint{
					"events": {-1: broker.NewEndpointWithDefaultPort("kafka1.example.com")},
				},
			},
			err: "invalid partitions for topic events: invalid partition -1",
		},
		{
			name: "Good",
			config: &broker.Config{
				Name:    "main",
				Brokers: broker.Endpoints{broker.NewEndpointWithDefaultPort("kafka1.example.com")},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.config.Parameters()
			if test.err != "" {
				require.ErrorContains(t, err, test.err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigMarshal(t *testing.T) {
	config := &broker.Config{
		Name: "main",
		Brokers: broker.Endpoints{
			broker.NewEndpointWithDefaultPort("kafka1.example.com"),
			broker.NewEndpoint("kafka2.example.com", 9093),
		},
	}
	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	require.Contains(t, string(data), "- kafka1.example.com:9092\n")
	require.Contains(t, string(data), "- kafka2.example.com:9093\n")
	require.NotContains(t, string(data), "topics")

	res, err := broker.ReadConfig(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Equal(t, config, res)
}
