// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package server

// contextKey is a private type for request context values.
type contextKey string

const contextKeyRequestID contextKey = "requestID"
