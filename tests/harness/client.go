// client.go
//
// Fluent HTTP assertions for exercising in-process web applications in tests
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of httpassert.
// httpassert is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// httpassert is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with httpassert.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package harness

import (
	"net/url"

	"github.com/stretchr/testify/require"
)

// TestingT is the failure channel assertions report through. *testing.T satisfies it.
type TestingT = require.TestingT

type tHelper interface {
	Helper()
}

// Client sends requests through a Dispatcher and wraps the responses for t.
// Any error building or handling a request fails the test immediately.
type Client struct {
	t TestingT
	d *Dispatcher
}

// NewClient returns a Client reporting to t.
func NewClient(t TestingT, d *Dispatcher) *Client {
	return &Client{t: t, d: d}
}

// Get sends GET uri.
func (c *Client) Get(uri string, opts ...RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.send(MethodGet, uri, nil, opts)
}

// Post sends POST uri with an optional form body.
func (c *Client) Post(uri string, body url.Values, opts ...RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.send(MethodPost, uri, body, opts)
}

// Put sends PUT uri. Unlike Post, the body is required.
func (c *Client) Put(uri string, body url.Values, opts ...RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	require.NotNil(c.t, body, "PUT %s requires a body.", uri)
	return c.send(MethodPut, uri, body, opts)
}

// Delete sends DELETE uri.
func (c *Client) Delete(uri string, opts ...RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.send(MethodDelete, uri, nil, opts)
}

// Options sends OPTIONS uri.
func (c *Client) Options(uri string, opts ...RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.send(MethodOptions, uri, nil, opts)
}

func (c *Client) send(method, uri string, body url.Values, opts []RequestOption) *Response {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	resp, err := c.d.Call(method, uri, body, opts...)
	require.NoError(c.t, err)
	return Wrap(c.t, resp)
}
