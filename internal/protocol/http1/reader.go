package http1

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/indigo-web/request/errors"
	"github.com/indigo-web/utils/uf"
)

// ReadAll drains the reader until the end of stream. Reads are made in chunks of buffSize
// bytes. The stream is considered exhausted as soon as a read returns either io.EOF or no
// data at all. Short reads are NOT treated as the end of stream, as a peer can write
// the response in pieces of arbitrary size.
//
// Every chunk must be a valid UTF-8 text. A multibyte sequence split between two chunks
// is tolerated, however anything else that isn't UTF-8 (e.g. binary bodies) is rejected
// with errors.ErrEncoding. Reading more than maxSize bytes in total results in
// errors.ErrResponseTooLarge; non-positive maxSize disables the limit.
func ReadAll(r io.Reader, buffSize, maxSize int) (string, error) {
	if buffSize <= 0 {
		buffSize = 1024
	}

	var (
		buff = make([]byte, buffSize)
		// the accumulator and the validated prefix of it. Bytes after the prefix are
		// an incomplete rune, waiting for its continuation to arrive.
		acc       []byte
		validated int
	)

	for {
		n, err := r.Read(buff)
		if n > 0 {
			if maxSize > 0 && len(acc)+n > maxSize {
				return "", errors.ErrResponseTooLarge
			}

			acc = append(acc, buff[:n]...)

			var verr error
			if validated, verr = validate(acc, validated); verr != nil {
				return "", verr
			}
		}

		switch {
		case err == io.EOF, err == nil && n == 0:
			if validated != len(acc) {
				return "", errors.Wrap(errors.ErrEncoding, io.ErrUnexpectedEOF)
			}

			return uf.B2S(acc), nil
		case err != nil:
			return "", errors.Wrap(errors.ErrIO, err)
		}
	}
}

// validate checks acc[from:] for being a valid UTF-8. It returns the length of the
// validated prefix. A trailing incomplete rune isn't an error yet, as its remainder
// may arrive with the next read.
func validate(acc []byte, from int) (int, error) {
	for from < len(acc) {
		if acc[from] < utf8.RuneSelf {
			from++
			continue
		}

		rest := acc[from:]
		if !utf8.FullRune(rest) {
			break
		}

		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 {
			return from, errors.Wrap(errors.ErrEncoding, errInvalidByte{offset: from, b: acc[from]})
		}

		from += size
	}

	return from, nil
}

type errInvalidByte struct {
	offset int
	b      byte
}

func (e errInvalidByte) Error() string {
	return fmt.Sprintf("invalid byte %#x at offset %d", e.b, e.offset)
}
