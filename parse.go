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
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// ParseEndpoint parses a spec of the form host or host:port.
// A missing port is DefaultPort.  Specs with more than one colon, including
// IPv6 literals, are rejected with an *InvalidSpecError; a port that is not an
// integer is rejected with a *PortFormatError.
func ParseEndpoint(spec string) (Endpoint, error) {
	parts := splitSpec(spec)
	switch len(parts) {
	case 1:
		return NewEndpointWithDefaultPort(parts[0]), nil
	case 2:
		port, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return Endpoint{}, &PortFormatError{
				Spec: spec,
				Port: parts[1],
				Err:  err,
			}
		}

		return NewEndpoint(parts[0], int32(port)), nil
	default:
		return Endpoint{}, &InvalidSpecError{Spec: spec}
	}
}

// splitSpec splits on colons, dropping trailing empty segments,
// so "host:" is a single segment and ":" is none.
func splitSpec(spec string) []string {
	parts := strings.Split(spec, ":")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}

// ParseEndpoints parses a comma-separated list of specs.
// Blank items are skipped.  All invalid items are reported, not just the first.
func ParseEndpoints(list string) (Endpoints, error) {
	var errs error
	endpoints := make(Endpoints, 0)
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		endpoint, err := ParseEndpoint(item)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		endpoints = append(endpoints, endpoint)
	}
	if errs != nil {
		return nil, errs
	}

	return endpoints, nil
}
