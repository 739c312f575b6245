// Package zonev1 holds the generated ZoneService wire contract compiled from
// api/proto/zone/v1/zone.proto.
package zonev1

//go:generate protoc -I ../../../api/proto --go_out=../../.. --go_opt=module=github.com/cory-johannsen/skirmish --go-grpc_out=../../.. --go-grpc_opt=module=github.com/cory-johannsen/skirmish zone/v1/zone.proto
