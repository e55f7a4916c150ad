// Package main Barracuda Partners API
//
// Affiliate network marketing backend: contact intake, goal postback relay
// and the admin back office.
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api
// Version: 1.0.0
// Contact: Barracuda Partners Support <support@barracuda-partners.com>
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// Security:
// - bearerAuth: []
//
// SecurityDefinitions:
// bearerAuth:
//
//	type: apiKey
//	name: Authorization
//	in: header
//	description: Opaque session token in format "Bearer {token}"
//
// swagger:meta
package main
