// doc.go
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

// Package harness drives an in-process web application with synthetic HTTP
// requests and asserts on the responses.
//
// It has two halves:
//   - Dispatcher and Client build requests (method, URI, form body, headers,
//     cookies, query) and pass them to a Handler such as *fiber.App
//   - Response wraps the result with readers and chainable assertions that
//     fail the test through testify's require package
//
// Fixture and Suite keep one application instance alive across tests until
// it is explicitly reset.
//
//	s.Get("/api/notes/1", harness.WithHeader("X-Api-Version", "1.0.0")).
//		AssertOk().
//		AssertHeader("Content-Type", "application/json").
//		AssertJSONPath("title", "first")
package harness
