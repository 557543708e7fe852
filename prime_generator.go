// This file adapts the teacher's safe-prime search (which hunted for a pair
// p = 2q+1 using a small-primes sieve plus Pocklington's criterion) into a
// concurrent search for a single plain prime of a target bit length. This
// scheme does not require safe primes, so the Sophie-Germain-specific
// structure (the q-then-p=2q+1 pass and Pocklington check) is gone, but the
// concurrency shape — race N goroutines, each sieving candidates against a
// small-primes table before paying for a full primality test, cancel the
// rest on first success — is kept verbatim.
package paillier

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"
)

// smallPrimes is a list of small, prime numbers that allows us to rapidly
// exclude some fraction of composite candidates when searching for a random
// prime. This list is truncated at the point where smallPrimesProduct exceeds
// a uint64. It does not include two because we ensure that the candidates are
// odd by construction.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// smallPrimesProduct is the product of the values in smallPrimes and allows us
// to reduce a candidate prime by this number and then determine whether it's
// coprime to all the elements of smallPrimes without further big.Int
// operations.
var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// GenerateConcurrentPrime searches for a random prime of bitLen bits across
// concurrencyLevel goroutines, returning as soon as one of them succeeds.
// Concurrency level should scale with bitLen: generating a 512-bit prime is
// a matter of milliseconds on a single core, but a 2048-bit prime benefits
// from racing several goroutines against each other.
func GenerateConcurrentPrime(
	bitLen int,
	concurrencyLevel int,
	timeout time.Duration,
) (p *big.Int, err error) {
	if bitLen < 6 {
		return nil, errors.New("prime size must be at least 6 bits")
	}
	if concurrencyLevel < 1 {
		concurrencyLevel = 1
	}

	primeChan := make(chan *big.Int, 1)
	errChan := make(chan error, 1)
	defer close(primeChan)
	defer close(errChan)

	mutex := &sync.Mutex{}
	waitGroup := &sync.WaitGroup{}
	waitGroup.Add(concurrencyLevel)

	ctx, cancel := context.WithCancel(context.Background())

	for i := 0; i < concurrencyLevel; i++ {
		runGenPrimeRoutine(ctx, primeChan, errChan, mutex, waitGroup, rand.Reader, bitLen)
	}

	go func() {
		time.Sleep(timeout)
		mutex.Lock()
		cancel()
		mutex.Unlock()
	}()

	select {
	case result := <-primeChan:
		mutex.Lock()
		cancel()
		mutex.Unlock()
		p, err = result, nil
	case result := <-errChan:
		mutex.Lock()
		cancel()
		mutex.Unlock()
		p, err = nil, result
	case <-ctx.Done():
		p, err = nil, fmt.Errorf("prime generator timed out after %v", timeout)
	}

	waitGroup.Wait()
	return
}

// runGenPrimeRoutine starts a goroutine searching for a random prime of the
// given bit length. The algorithm: draw an odd candidate of the right size
// with its top two bits set, sieve it against smallPrimes (adding 2 and
// retrying up to a bounded number of times when it fails), then run a full
// probabilistic primality test on whatever survives the sieve.
func runGenPrimeRoutine(
	ctx context.Context,
	primeChan chan *big.Int,
	errChan chan error,
	mutex *sync.Mutex,
	waitGroup *sync.WaitGroup,
	rnd io.Reader,
	bitLen int,
) {
	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bitLen+7)/8)
	candidate := new(big.Int)
	bigMod := new(big.Int)

	go func() {
		for {
			select {
			case <-ctx.Done():
				waitGroup.Done()
				return
			default:
				_, err := io.ReadFull(rnd, bytes)
				if err != nil {
					errChan <- err
					waitGroup.Done()
					return
				}

				bytes[0] &= uint8(int(1<<b) - 1)
				if b >= 2 {
					bytes[0] |= 3 << (b - 2)
				} else {
					bytes[0] |= 1
					if len(bytes) > 1 {
						bytes[1] |= 0x80
					}
				}
				bytes[len(bytes)-1] |= 1

				candidate.SetBytes(bytes)

				bigMod.Mod(candidate, smallPrimesProduct)
				mod := bigMod.Uint64()

			NextDelta:
				for delta := uint64(0); delta < 1<<20; delta += 2 {
					m := mod + delta
					for _, prime := range smallPrimes {
						if m%uint64(prime) == 0 && (bitLen > 6 || m != uint64(prime)) {
							continue NextDelta
						}
					}
					if delta > 0 {
						bigMod.SetUint64(delta)
						candidate.Add(candidate, bigMod)
					}
					break
				}

				if candidate.BitLen() == bitLen && candidate.ProbablyPrime(20) {
					mutex.Lock()
					if ctx.Err() == nil {
						primeChan <- new(big.Int).Set(candidate)
					}
					mutex.Unlock()
					waitGroup.Done()
					return
				}
			}
		}
	}()
}
