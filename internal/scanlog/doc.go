// Package scanlog provides the append-only scan log and the unbounded
// progress stream an external consumer can drain while a scan is running.
package scanlog
