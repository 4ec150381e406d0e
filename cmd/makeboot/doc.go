// Package main provides the entry point for makeboot.
//
// makeboot turns hexadecimal byte tokens into a 512-byte boot sector:
// the bytes are placed at offset 0, zero padded to offset 510 and
// followed by the 0x55 0xAA signature.
//
// Usage:
//
//	makeboot EB FE 90
//	makeboot -f loader.bin --from loader.tok
//	makeboot inspect boot.bin
//	makeboot export boot.bin boot.hex
//	makeboot watch loader.tok
package main
