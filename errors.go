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

import "fmt"

// InvalidSpecError is returned when a spec is not of the form host or host:port.
type InvalidSpecError struct {
	Spec string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid host specification: %q", e.Spec)
}

// PortFormatError is returned when the port of a host:port spec is not an integer.
type PortFormatError struct {
	Spec string
	Port string
	Err  error
}

func (e *PortFormatError) Error() string {
	return fmt.Sprintf("invalid port %q in host specification %q: %v", e.Port, e.Spec, e.Err)
}

// Unwrap returns the underlying integer parse error.
func (e *PortFormatError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying integer parse error, for github.com/pkg/errors.
func (e *PortFormatError) Cause() error {
	return e.Err
}
