// package testutils provides small R1CS fixtures and a deterministic
// randomness source shared by the test suites across this module: a
// handful of fixture helpers consumed by multiple packages' tests.
package testutils
