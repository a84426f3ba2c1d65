package bbs

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// IsPrime is plain trial division; the parameters it checks are small
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// WritePrimes writes the first count primes to w, one per line
func WritePrimes(w io.Writer, count int) error {
	if count <= 0 {
		return nil
	}

	limit := sieveLimit(count)
	composite := make([]bool, limit+1)
	buffered := bufio.NewWriter(w)
	written := 0
	for i := 2; i <= limit && written < count; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
		if _, err := buffered.WriteString(strconv.Itoa(i) + "\n"); err != nil {
			return err
		}
		written++
	}
	return buffered.Flush()
}

// sieveLimit bounds the count-th prime from above: p_n < n(ln n + ln ln n) for n >= 6
func sieveLimit(count int) int {
	if count < 6 {
		return 13
	}
	n := float64(count)
	return int(math.Ceil(n * (math.Log(n) + math.Log(math.Log(n)))))
}
