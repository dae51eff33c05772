package utils

import (
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"
)

// LongToBytes converts an int64 variable to byte array
// in little endian format
func LongToBytes(num int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(num))
	return buf
}

// BytesToLong converts a byte array in little endian format
// back to an int64 variable
func BytesToLong(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

// IntToBytes converts an int variable to byte array
// in little endian format
func IntToBytes(num int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(num))
	return buf
}

// UInt32ToBytes converts an uint32 variable to byte array
// in little endian format
func UInt32ToBytes(num uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, num)
	return buf
}

// WriteFile writes buf to a file whose path is indicated by filename.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("Can't write file. File '%s' already exists\n",
			filename)
	}

	if err := ioutil.WriteFile(filename, buf, perm); err != nil {
		return err
	}
	return nil
}
