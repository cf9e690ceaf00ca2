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
	"slices"
	"strings"
)

// Endpoints is a list of broker endpoints.
type Endpoints []Endpoint

// Len implements sort.Interface.
func (e Endpoints) Len() int { return len(e) }

// Less implements sort.Interface.
func (e Endpoints) Less(i, j int) bool { return e[i].Compare(e[j]) < 0 }

// Swap implements sort.Interface.
func (e Endpoints) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// Sort sorts the endpoints in place by host and then port.
func (e Endpoints) Sort() {
	slices.SortFunc(e, Endpoint.Compare)
}

// Unique returns a sorted copy of the endpoints with duplicates removed.
func (e Endpoints) Unique() Endpoints {
	res := slices.Clone(e)
	if res == nil {
		res = make(Endpoints, 0)
	}
	res.Sort()

	return slices.Compact(res)
}

// Contains returns true if the endpoint is in the list.
func (e Endpoints) Contains(endpoint Endpoint) bool {
	return slices.Contains(e, endpoint)
}

// Strings returns the canonical form of each endpoint, for clients that take
// broker addresses as strings.
func (e Endpoints) Strings() []string {
	res := make([]string, len(e))
	for i := range e {
		res[i] = e[i].String()
	}

	return res
}

// String returns the endpoints as a comma-separated list accepted by ParseEndpoints.
func (e Endpoints) String() string {
	return strings.Join(e.Strings(), ",")
}
