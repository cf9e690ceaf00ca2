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

package broker

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// PartitionMap maps the partitions of a topic to their leader brokers.
type PartitionMap struct {
	topic   string
	leaders map[int32]Endpoint
}

// NewPartitionMap creates a partition map for a topic.
// The leaders map is copied.
func NewPartitionMap(topic string, leaders map[int32]Endpoint) (*PartitionMap, error) {
	if topic == "" {
		return nil, errors.New("no topic specified")
	}
	for partition, leader := range leaders {
		if partition < 0 {
			return nil, errors.Errorf("invalid partition %d", partition)
		}
		if leader.IsZero() {
			return nil, errors.Errorf("no leader for partition %d", partition)
		}
	}

	return &PartitionMap{
		topic:   topic,
		leaders: maps.Clone(leaders),
	}, nil
}

// Topic provides the topic of the partition map.
func (p *PartitionMap) Topic() string {
	return p.topic
}

// Len provides the number of partitions.
func (p *PartitionMap) Len() int {
	return len(p.leaders)
}

// Leader provides the leader broker for the given partition.
func (p *PartitionMap) Leader(partition int32) (Endpoint, bool) {
	leader, exists := p.leaders[partition]

	return leader, exists
}

// Partitions provides the partitions in ascending order.
func (p *PartitionMap) Partitions() []int32 {
	return slices.Sorted(maps.Keys(p.leaders))
}

// Brokers provides the distinct leader brokers, sorted.
func (p *PartitionMap) Brokers() Endpoints {
	return Endpoints(slices.Collect(maps.Values(p.leaders))).Unique()
}

// String implements the stringer interface.
func (p *PartitionMap) String() string {
	items := make([]string, 0, len(p.leaders))
	for _, partition := range p.Partitions() {
		items = append(items, fmt.Sprintf("%d=%s", partition, p.leaders[partition]))
	}

	return fmt.Sprintf("topic=%s {%s}", p.topic, strings.Join(items, ", "))
}
