// Package oci extracts semantic versions from container image references.
// References are normalized with the distribution reference grammar, so
// short forms like "nginx:1.27.3" resolve the same way a container runtime
// would resolve them.
package oci
