// SPDX-License-Identifier: MIT

// Package lexer tokenizes the child-map text format.
//
// Every line holds one entry, a parent followed by its children:
//
//	parent:child,child
//	leaf
//
// A line holding a bare value records an entry without children.
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func(context.Context) NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer defines a type to capture identifiers from a child-map source.
	Lexer struct {
		cfg *Config

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input source.
		source io.RuneReader

		// buffer is a slice of runes being lexed.
		buffer []rune
		// bufferIndex is the current buffer position.
		//
		// When this value exceeds the length of buffer, the buffer is populated from the source.
		bufferIndex int

		line         int
		valueCounter int

		// eof is set once the source is exhausted.
		eof bool
	}
)

const (
	defBufferSize = 10
)

// Lexing errors.
var (
	ErrInvalidBackupAmount = errors.New("invalid backup amount")
	ErrInvalidRune         = errors.New("invalid rune")
)

// Improves on performance compared to ORs.
var whitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\r': true,
}

// New creates a new scanner for source.
func New(source io.RuneReader, opts ...Option) *Lexer {
	if source == nil {
		source = strings.NewReader("")
	}

	return &Lexer{
		cfg:    NewConfig(opts...),
		c:      make(chan Item, defBufferSize),
		buffer: make([]rune, 0, defBufferSize),
		source: source,
		line:   1,
	}
}

// Config obtains the Lexer's configuration.
func (l *Lexer) Config() *Config { return l.cfg }

// ValueCounter obtains the number of values lexed.
func (l *Lexer) ValueCounter() int { return l.valueCounter }

// Lex lexes the input by executing state functions.
//
// Lex is meant to run on its own goroutine; it returns once the source is consumed or ctx is
// done, closing the Item channel.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	for stateFunction := l.LexWhitespace; stateFunction != nil; {
		select {
		case <-ctx.Done():
			return
		default:
			stateFunction = stateFunction(ctx)
		}
	}
}

// LexWhitespace discards whitespace, dispatching on the following rune.
func (l *Lexer) LexWhitespace(ctx context.Context) NextOperation {
	if _, err := l.AcceptWhile(isWhitespace); err != nil {
		l.EmitError(ctx, err)
		return nil
	}
	// Ignore white spaces, discard instead of emit.
	l.Discard()

	next := l.Next()
	switch {
	case next == emptyRune && l.eof:
		l.EmitEOF(ctx)
		return nil
	case next == emptyRune:
		l.EmitError(ctx, fmt.Errorf("%w: %q", ErrInvalidRune, next))
		return nil
	case next == l.cfg.Separator:
		l.Emit(ctx, ItemSeparator)
	case next == l.cfg.Splitter:
		l.Emit(ctx, ItemSplitter)
	case next == l.cfg.LineEnd:
		l.Emit(ctx, ItemLineEnd)
		l.line++
	default:
		return l.LexValue
	}

	return l.LexWhitespace
}

// LexValue captures an identifier.
func (l *Lexer) LexValue(ctx context.Context) NextOperation {
	eof, err := l.AcceptWhile(l.isValue)
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}

	l.valueCounter++
	l.Emit(ctx, ItemValue)

	if eof {
		l.EmitEOF(ctx)
		return nil
	}

	return l.LexWhitespace
}

// Next return the Next rune in the input.
func (l *Lexer) Next() (r rune) {
	if l.bufferIndex >= len(l.buffer) {
		// Request data from the source.
		if l.Source(0) < 1 {
			l.eof = true
			return emptyRune
		}
	}

	r = l.buffer[l.bufferIndex]
	l.bufferIndex++

	return
}

// Backup step back one rune.
func (l *Lexer) Backup() error { return l.BackupN(1) }

// BackupN step back N runes.
func (l *Lexer) BackupN(n int) (err error) {
	if l.bufferIndex < n {
		err = fmt.Errorf("%w: amount %d index: %d", ErrInvalidBackupAmount, n, l.bufferIndex)
		return
	}
	l.bufferIndex -= n

	return
}

// Discard the buffer content before the current buffer index.
func (l *Lexer) Discard() {
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// Source runes from the source reader.
func (l *Lexer) Source(amount int) (sourced int) {
	if amount < defBufferSize {
		amount = defBufferSize
	}

	buffer := make([]rune, amount)
	for ; sourced < amount; sourced++ {
		// NOTE: Function cost reduced by swapping the error check's condition.
		if r, _, err := l.source.ReadRune(); err == nil {
			buffer[sourced] = r
			continue
		}

		// Treating read errors as the end of the source.
		break
	}

	l.buffer = append(l.buffer, buffer[:sourced]...)

	return
}

// AcceptWhile consumes runes while fn holds, reporting whether the end of the source was reached.
func (l *Lexer) AcceptWhile(fn ValidationFunction) (eof bool, err error) {
	for {
		r := l.Next()
		if r == emptyRune && l.eof {
			return true, nil
		}

		// End of current token type.
		if !fn(r) {
			return false, l.Backup()
		}
	}
}

// Emit sends the buffered runes over the communication channel as an Item.
func (l *Lexer) Emit(ctx context.Context, t ItemID) {
	value := string(l.buffer[:l.bufferIndex])
	if l.cfg.Debug {
		// Debug operation makes this operation un-inlinable.
		l.cfg.Logger.Debugf("lexer emit: %s %q", t, value)
	}

	l.send(ctx, Item{ID: t, Val: value, Line: l.line})
	l.Discard()
}

// EmitEOF sends an ItemEOF Item over the communication channel.
func (l *Lexer) EmitEOF(ctx context.Context) { l.send(ctx, Item{ID: ItemEOF, Line: l.line}) }

// EmitError sends an error over the Lexer's channel, terminating the scan.
func (l *Lexer) EmitError(ctx context.Context, err error) {
	l.send(ctx, Item{ID: ItemError, Err: err, Line: l.line})
}

func (l *Lexer) send(ctx context.Context, item Item) {
	select {
	case <-ctx.Done():
	case l.c <- item:
	}
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

func (l *Lexer) isValue(r rune) bool { return !l.cfg.IsReserved(r) }

// isWhitespace return true for space, tab & carriage return.
func isWhitespace(r rune) bool { return r < 256 && whitespace[r] }
