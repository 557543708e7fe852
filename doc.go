//The MIT License (MIT)

//Copyright (c) 2013 didier amyot

//Permission is hereby granted, free of charge, to any person obtaining a copy
//of this software and associated documentation files (the "Software"), to deal
//in the Software without restriction, including without limitation the rights
//to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
//copies of the Software, and to permit persons to whom the Software is
//furnished to do so, subject to the following conditions:

//The above copyright notice and this permission notice shall be included in
//all copies or substantial portions of the Software.

//THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
//IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
//FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
//AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
//LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
//THE SOFTWARE.

/*
Package paillier implements encrypted counters on top of the Paillier
cryptosystem.  See http://en.wikipedia.org/wiki/Paillier_cryptosystem for
an introduction.

A counter holds an unsigned integer whose plaintext is never materialized
during normal operation: holders of the public key may increment, decrement,
add, subtract, scalar-multiply, blind, duplicate and compare counters;
holders of the private key may decrypt, or run an oblivious comparison that
reveals only the sign of a difference.

Private-key operations are accelerated with the Chinese Remainder Theorem on
the two prime factors of the modulus, and the Paillier L-function reduction
uses the Paillier-Pointcheval fast-L trick (multiplication by the modular
inverse of a factor modulo a power of two, after masking the low bits).

The package also supports serialization of keys and counters to hex, JSON
and (via the paillierbson subpackage) BSON.
*/
package paillier
