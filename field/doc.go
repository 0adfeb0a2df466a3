// package field adapts the BLS12-381 scalar field to the narrow surface the
// rest of spartan-core needs: arithmetic, uniform sampling, and canonical
// fixed-width byte encoding. Every other package treats F as this type and
// never touches gnark-crypto's fr.Element directly.
package field
