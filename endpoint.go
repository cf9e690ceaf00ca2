// Copyright © 2020 - 2026 Weald Technology Trading
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
	"cmp"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultPort is the port used when a broker is specified by host alone.
const DefaultPort int32 = 9092

// Endpoint specifies a host/port tuple for a Kafka broker.
// The zero value is the empty endpoint, which is the target for
// deserialization.  NewEndpoint("", 0) and ParseEndpoint(":0") are
// indistinguishable from it.
type Endpoint struct {
	host string
	port int32
}

// NewEndpoint creates a new endpoint.
// Neither host nor port is validated.
func NewEndpoint(host string, port int32) Endpoint {
	return Endpoint{
		host: host,
		port: port,
	}
}

// NewEndpointWithDefaultPort creates a new endpoint on DefaultPort.
func NewEndpointWithDefaultPort(host string) Endpoint {
	return NewEndpoint(host, DefaultPort)
}

// Host provides the host of the endpoint.
func (e Endpoint) Host() string {
	return e.host
}

// Port provides the port of the endpoint.
func (e Endpoint) Port() int32 {
	return e.port
}

// IsZero returns true if this is the empty endpoint.
func (e Endpoint) IsZero() bool {
	return e.host == "" && e.port == 0
}

// String implements the stringer interface.
// The result is the canonical form accepted by ParseEndpoint.
func (e Endpoint) String() string {
	return e.host + ":" + strconv.FormatInt(int64(e.port), 10)
}

// Network implements net.Addr.  The host is left unresolved.
func (e Endpoint) Network() string {
	return "tcp"
}

// Equal returns true if both host and port match.
func (e Endpoint) Equal(other Endpoint) bool {
	return e == other
}

// Hash returns a hash of the host and port.
func (e Endpoint) Hash() uint64 {
	d := xxhash.New()
	// Writes to a digest never fail.
	_, _ = d.WriteString(e.host)
	var buf [5]byte
	// Separator so that host bytes cannot run into the port.
	buf[0] = 0xff
	binary.BigEndian.PutUint32(buf[1:], uint32(e.port))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}

// Compare orders endpoints by host and then by port.
// It returns a negative number if e sorts before other, zero if they are
// equal and a positive number otherwise.  The empty host sorts first.
func (e Endpoint) Compare(other Endpoint) int {
	if c := strings.Compare(e.host, other.host); c != 0 {
		return c
	}

	return cmp.Compare(e.port, other.port)
}

// MarshalText implements encoding.TextMarshaler.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endpoint) UnmarshalText(text []byte) error {
	endpoint, err := ParseEndpoint(string(text))
	if err != nil {
		return err
	}
	*e = endpoint

	return nil
}
