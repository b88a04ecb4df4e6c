package alphabet

// letterToCode maps each lowercase Latin letter to its International Morse code.
// Codes are 1 to 4 symbols long. Digits and punctuation are not part of the table.
var letterToCode = map[byte]string{
	'a': ".-",
	'b': "-...",
	'c': "-.-.",
	'd': "-..",
	'e': ".",
	'f': "..-.",
	'g': "--.",
	'h': "....",
	'i': "..",
	'j': ".---",
	'k': "-.-",
	'l': ".-..",
	'm': "--",
	'n': "-.",
	'o': "---",
	'p': ".--.",
	'q': "--.-",
	'r': ".-.",
	's': "...",
	't': "-",
	'u': "..-",
	'v': "...-",
	'w': ".--",
	'x': "-..-",
	'y': "-.--",
	'z': "--..",
}

// codeToLetter is the inverse of letterToCode. Built once in init.
var codeToLetter map[string]byte

func init() {
	codeToLetter = make(map[string]byte, len(letterToCode))
	for l, c := range letterToCode {
		if len(c) == 0 || len(c) > MaxCodeLen {
			panic("alphabet: code for " + string(l) + " has invalid length")
		}
		if prev, dup := codeToLetter[c]; dup {
			panic("alphabet: code " + c + " shared by " + string(prev) + " and " + string(l))
		}
		codeToLetter[c] = l
	}
}
