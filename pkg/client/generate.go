package client

//go:generate go run ../../apps/scitech openapi -o openapi.json
//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.json
