package catalog

//go:generate mockgen -package mocks -destination mocks/mock_client.go github.com/streamhaven/catalogd/pkg/catalog ClientInterface
