package server

//go:generate mockgen -package mocks -destination mocks/mock_syncer.go github.com/streamhaven/catalogd/server Syncer
