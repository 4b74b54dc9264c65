// Package quotex renders bytes and strings as quoted, escaped text: POSIX
// shell single-quoting, C-style escaping, lowercase hex and ASCII-escaped
// double quoting, plus a Join helper that writes a separator after every
// item.
//
// Every type is a plain value with String and WriteTo methods. The
// transforms are total; the only possible error is a failed write to the
// destination, which is returned unchanged.
//
// Basic usage:
//
//	fmt.Println(quotex.ShellQuote("hi'there'yall"))
//	// 'hi'\''there'\''yall'
//
//	fmt.Println(quotex.HexOf([]byte("hello")))
//	// 68656c6c6f
//
//	fmt.Println(quotex.ASCIIQuoteOf([]byte("hello\x88")))
//	// "hello\x88"
//
// Joining (note the trailing separator):
//
//	args := []quotex.ShellQuote{"ls", "-l", "my file"}
//	fmt.Println(quotex.JoinSlice(" ", args))
//	// 'ls' '-l' 'my file'<space>
//
// Highlighting on a terminal:
//
//	opts := &quotex.Options{Palette: "tokyo-night"}
//	if err := quotex.Render(os.Stdout, quotex.CEscape("a\x00b"), opts); err != nil {
//		log.Fatal(err)
//	}
package quotex
