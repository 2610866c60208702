// Copyright 2022 The Armored Wallet authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage persists the device settings, the PIN verifier and the
// PIN fail counter.
//
// The settings live in a single CBOR record at the start of a block device.
// The fail counter lives in the following block unless a dedicated Counter,
// such as an RPMB sector, is supplied.
package storage

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/coreos/go-semver/semver"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/pbkdf2"
	"k8s.io/klog/v2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count for PIN keys.
	DefaultIterations = 4096
	// MaxLabelLength is the longest label accepted, in bytes.
	MaxLabelLength = 32

	recordBlock  = 0
	counterBlock = 1

	saltLength = 16
	keyLength  = 32

	// magic(4) length(4)
	headerLength = 8
)

var recordMagic = []byte("AWST")

// FormatVersion is the record format written by this package, records with
// a newer major version are refused.
var FormatVersion = semver.New("1.1.0")

// BlockReaderWriter defines an interface for reading and writing blocks of
// data from a storage device.
type BlockReaderWriter interface {
	// BlockSize returns the block size of the underlying storage system.
	BlockSize() uint

	// ReadBlocks reads len(b) bytes into b from contiguous storage blocks
	// starting at the given block address.
	// b must be an integer multiple of the device's block size.
	ReadBlocks(lba uint, b []byte) error

	// WriteBlocks writes len(b) bytes from b to contiguous storage blocks
	// starting at the given block address.
	// b must be an integer multiple of the device's block size.
	//
	// Returns the number of blocks written, or an error.
	WriteBlocks(lba uint, b []byte) (uint, error)
}

// Counter persists the PIN fail counter word.
type Counter interface {
	ReadCounter() (uint32, error)
	WriteCounter(v uint32) error
}

// Options tune Open, the zero value selects the defaults.
type Options struct {
	// Counter replaces the block backed fail counter.
	Counter Counter
	// Iterations is the PBKDF2 iteration count.
	Iterations int
	// Rand is the PIN salt source.
	Rand io.Reader
}

type record struct {
	Version              string `cbor:"1,keyasint"`
	Initialized          bool   `cbor:"2,keyasint,omitempty"`
	Label                string `cbor:"3,keyasint,omitempty"`
	PinSalt              []byte `cbor:"4,keyasint,omitempty"`
	PinKey               []byte `cbor:"5,keyasint,omitempty"`
	PassphraseProtection bool   `cbor:"6,keyasint,omitempty"`
}

// Storage is the persistent device state.
type Storage struct {
	dev     BlockReaderWriter
	counter Counter
	iter    int
	rand    io.Reader

	rec record
}

// Open loads the record from dev, a blank device yields factory settings.
func Open(dev BlockReaderWriter, opts Options) (*Storage, error) {
	s := &Storage{
		dev:     dev,
		counter: opts.Counter,
		iter:    opts.Iterations,
		rand:    opts.Rand,
	}

	if s.counter == nil {
		s.counter = &blockCounter{dev: dev, lba: counterBlock}
	}
	if s.iter <= 0 {
		s.iter = DefaultIterations
	}
	if s.rand == nil {
		s.rand = rand.Reader
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) load() error {
	b := make([]byte, s.dev.BlockSize())

	if err := s.dev.ReadBlocks(recordBlock, b); err != nil {
		return fmt.Errorf("failed to read record: %v", err)
	}

	if !bytes.Equal(b[:len(recordMagic)], recordMagic) {
		klog.Info("No settings record found, using factory settings")
		s.rec = record{}
		return nil
	}

	n := binary.BigEndian.Uint32(b[len(recordMagic):])
	if uint64(n) > uint64(len(b)-headerLength) {
		return fmt.Errorf("record length %d exceeds block", n)
	}

	var rec record
	if err := cbor.Unmarshal(b[headerLength:headerLength+int(n)], &rec); err != nil {
		return fmt.Errorf("failed to decode record: %v", err)
	}

	v, err := semver.NewVersion(rec.Version)
	if err != nil {
		return fmt.Errorf("invalid record version %q: %v", rec.Version, err)
	}

	if v.Major > FormatVersion.Major {
		return fmt.Errorf("record version %v is newer than supported %v", v, FormatVersion)
	}

	klog.V(1).Infof("Loaded settings record version %v", v)
	s.rec = rec

	return nil
}

func (s *Storage) save(rec record) error {
	rec.Version = FormatVersion.String()
	rec.Initialized = true

	payload, err := cbor.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %v", err)
	}

	b := make([]byte, s.dev.BlockSize())
	if len(payload) > len(b)-headerLength {
		return fmt.Errorf("record of %d bytes does not fit a block", len(payload))
	}

	copy(b, recordMagic)
	binary.BigEndian.PutUint32(b[len(recordMagic):], uint32(len(payload)))
	copy(b[headerLength:], payload)

	if _, err := s.dev.WriteBlocks(recordBlock, b); err != nil {
		return fmt.Errorf("failed to write record: %v", err)
	}

	s.rec = rec

	return nil
}

// Initialized reports whether any setting has been stored.
func (s *Storage) Initialized() bool {
	return s.rec.Initialized
}

func (s *Storage) Label() string {
	return s.rec.Label
}

// SetLabel stores the device label.
func (s *Storage) SetLabel(label string) error {
	if len(label) > MaxLabelLength {
		return fmt.Errorf("label exceeds %d bytes", MaxLabelLength)
	}

	rec := s.rec
	rec.Label = label

	return s.save(rec)
}

func (s *Storage) PassphraseProtection() bool {
	return s.rec.PassphraseProtection
}

// SetPassphraseProtection enables or disables the passphrase prompt.
func (s *Storage) SetPassphraseProtection(on bool) error {
	rec := s.rec
	rec.PassphraseProtection = on

	return s.save(rec)
}

// HasPin reports whether a PIN is set.
func (s *Storage) HasPin() bool {
	return len(s.rec.PinKey) > 0
}

// SetPin stores a verifier for pin, an empty pin removes PIN protection.
func (s *Storage) SetPin(pin []byte) error {
	rec := s.rec

	if len(pin) == 0 {
		klog.Info("Removing PIN")
		rec.PinSalt = nil
		rec.PinKey = nil
		return s.save(rec)
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %v", err)
	}

	klog.Info("Changing PIN")
	rec.PinSalt = salt
	rec.PinKey = pbkdf2.Key(pin, salt, s.iter, keyLength, sha256.New)

	return s.save(rec)
}

// ContainsPin reports whether pin matches the stored PIN, in time
// independent of where the two differ. With no PIN set only the empty PIN
// matches.
func (s *Storage) ContainsPin(pin []byte) bool {
	if !s.HasPin() {
		return len(pin) == 0
	}

	key := pbkdf2.Key(pin, s.rec.PinSalt, s.iter, keyLength, sha256.New)
	defer clear(key)

	return subtle.ConstantTimeCompare(key, s.rec.PinKey) == 1
}

// PinFails returns the fail counter word. Its complement is the number of
// seconds to wait before the next PIN attempt.
func (s *Storage) PinFails() (uint32, error) {
	return s.counter.ReadCounter()
}

// IncreasePinFails records one more failed attempt on top of c, the value
// returned by PinFails. It returns false unless the new value was durably
// written. A saturated counter is left alone and reported as success.
func (s *Storage) IncreasePinFails(c uint32) bool {
	n := c << 1
	if n == 0 {
		return true
	}

	if err := s.counter.WriteCounter(n); err != nil {
		klog.Warningf("Failed to write PIN fail counter: %v", err)
		return false
	}

	got, err := s.counter.ReadCounter()
	if err != nil {
		klog.Warningf("Failed to read back PIN fail counter: %v", err)
		return false
	}

	return got == n
}

// ResetPinFails clears the fail counter.
func (s *Storage) ResetPinFails() error {
	c, err := s.counter.ReadCounter()
	if err == nil && c == 0xffffffff {
		return nil
	}

	return s.counter.WriteCounter(0xffffffff)
}

// Wipe erases the settings record and resets the fail counter.
// WARNING: Data Loss!
func (s *Storage) Wipe() error {
	klog.Info("Wiping storage")

	var errs []error

	if _, err := s.dev.WriteBlocks(recordBlock, make([]byte, s.dev.BlockSize())); err != nil {
		errs = append(errs, fmt.Errorf("failed to erase record: %v", err))
	}

	if err := s.counter.WriteCounter(0xffffffff); err != nil {
		errs = append(errs, fmt.Errorf("failed to reset counter: %v", err))
	}

	clear(s.rec.PinKey)
	clear(s.rec.PinSalt)
	s.rec = record{}

	return errors.Join(errs...)
}

// blockCounter keeps the complement of the counter word in a block, so that
// an erased device reads as no failed attempts.
type blockCounter struct {
	dev BlockReaderWriter
	lba uint
}

func (c *blockCounter) ReadCounter() (uint32, error) {
	b := make([]byte, c.dev.BlockSize())
	if err := c.dev.ReadBlocks(c.lba, b); err != nil {
		return 0, err
	}
	return ^binary.BigEndian.Uint32(b), nil
}

func (c *blockCounter) WriteCounter(v uint32) error {
	b := make([]byte, c.dev.BlockSize())
	binary.BigEndian.PutUint32(b, ^v)
	_, err := c.dev.WriteBlocks(c.lba, b)
	return err
}
