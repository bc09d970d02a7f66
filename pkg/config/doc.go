// Package config loads typed configuration structs from environment
// variables, with an optional .env file picked up once per process.
// Struct fields declare their sources via `env` tags; parsing is
// delegated to github.com/caarlos0/env.
//
// The engine itself needs no configuration, only its collaborators do
// (corpus.SearchConfig being the in-repo example), so this package
// stays deliberately small.
package config
