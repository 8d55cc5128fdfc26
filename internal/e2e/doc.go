// Package e2e holds the API test cases of the Notes service.
//
// By default the tests run against an in-process stub. Set SUITE_TARGET=remote
// together with EMAIL and PASSWORD to run them against API_BASE_URL instead;
// the EMAIL account must already exist and be named "test_rest_api".
//
//	go test ./internal/e2e/...
//	SUITE_TARGET=remote EMAIL=... PASSWORD=... NEW_PASSWORD=... go test ./internal/e2e/...
package e2e
