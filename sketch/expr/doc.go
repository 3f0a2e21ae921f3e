// Package expr compiles scalar arithmetic over the symbols x, y and z into Go
// closures.
//
// The grammar is deliberately small: numbers, the three coordinates (also spelled
// v.x, v.y, v.z), the constants pi and e, the operators + - * / ^ (and ** as a
// synonym for ^), parentheses, and a fixed table of elementary functions. There
// is no assignment, no user-defined function and no way to reach anything
// outside the table, so a compiled expression is a pure function of its point.
package expr
