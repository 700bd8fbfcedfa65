// Package server runs the loopback HTTP listener that receives OAuth
// redirects.
//
// One listener is started per authorization attempt on the configured
// loopback address and torn down when the attempt ends.
package server
