// Package mock provides test doubles for the ai package interfaces,
// enabling pipeline tests without any external generation service.
package mock
