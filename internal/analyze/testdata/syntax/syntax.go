package syntax

func Unclosed( {
