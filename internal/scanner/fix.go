package scanner

import "bufio"

// MakeSplitFuncExitByAdvance wraps a bufio.SplitFunc so that it may consume
// input without producing a token and have the scanner carry on. The plain
// bufio.Scanner stops as soon as a split func returns a nil token at EOF,
// even if there is still unconsumed data, so a split func that wants to skip
// something would otherwise need a loop of its own.
//
// The wrapped func is re-run on the remaining data until it returns a token,
// an error, asks for more data (advance == 0), or has consumed everything.
func MakeSplitFuncExitByAdvance(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		total := 0
		for {
			advance, token, err := split(data, atEOF)
			if token != nil || advance == 0 || len(data)-advance <= 0 || err != nil {
				return total + advance, token, err
			}

			data = data[advance:]
			total += advance
		}
	}
}
