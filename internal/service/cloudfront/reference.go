package cloudfront

import "crypto/rand"

// CallerReferenceLength はCallerReferenceの文字数
const CallerReferenceLength = 16

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewCallerReference は英数字16文字のランダムなCallerReferenceを生成する
func NewCallerReference() string {
	// 偏りを避けるため 62*4 以上のバイトは捨てる
	const limit = 256 - 256%len(referenceAlphabet)

	ref := make([]byte, 0, CallerReferenceLength)
	buf := make([]byte, CallerReferenceLength*2)
	for len(ref) < CallerReferenceLength {
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			ref = append(ref, referenceAlphabet[int(b)%len(referenceAlphabet)])
			if len(ref) == CallerReferenceLength {
				break
			}
		}
	}
	return string(ref)
}
