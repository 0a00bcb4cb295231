package main

import (
	"fmt"
)

func init() {
	register("16a", func(input string) (any, error) { return dragonChecksum(input, 272) })
	register("16b", func(input string) (any, error) { return dragonChecksum(input, 35651584) })
}

func dragonChecksum(seed string, length int) (string, error) {
	data := make([]byte, 0, 2*length+1)
	for i := 0; i < len(seed); i++ {
		if seed[i] != '0' && seed[i] != '1' {
			return "", fmt.Errorf("bad initial state %q", seed)
		}
		data = append(data, seed[i])
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty initial state")
	}
	for len(data) < length {
		n := len(data)
		data = append(data, '0')
		for i := n - 1; i >= 0; i-- {
			data = append(data, data[i]^1)
		}
	}
	data = data[:length]
	for len(data)%2 == 0 {
		for i := 0; i < len(data)/2; i++ {
			if data[2*i] == data[2*i+1] {
				data[i] = '1'
			} else {
				data[i] = '0'
			}
		}
		data = data[:len(data)/2]
	}
	return string(data), nil
}
