package lexer

// OperandStart scans left from end and returns the index where the operand
// ending at end begins. A parenthesized group is one operand and takes the
// function name written before it; otherwise the operand is the run of
// digits, '.' and constant letters. A sign in front stays outside, so -2^2
// is -(2^2). start == end means there is no operand.
func OperandStart(out []byte, end int) int {
	i := end
	if i == 0 {
		return end
	}

	if out[i-1] == ')' {
		depth := 0
		for i > 0 {
			i--
			switch out[i] {
			case ')':
				depth++
			case '(':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return 0
		}
		for i > 0 && isNameLetter(out[i-1]) {
			i--
		}
		return i
	}

	for i > 0 && isAtom(out[i-1]) {
		i--
	}
	return i
}

func isAtom(ch byte) bool {
	return isDigit(ch) || ch == '.' || isNameLetter(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
