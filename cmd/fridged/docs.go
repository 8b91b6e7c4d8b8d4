package main

// General API documentation for swaggo. Run swag against this package to
// generate docs.
//
// @title           fridged API
// @version         1.0
// @description     HTTP API for the refrigerated storage coordinator: inventory, recommendations and live events.
//
// @BasePath  /
//
// @schemes http
