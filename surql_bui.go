package surql

// Prealloc tool. Makes a `Bui` with the specified capacity of the text buffer.
func MakeBui(textCap int) Bui {
	return Bui{make([]byte, 0, textCap)}
}

/*
Short for "builder". Tiny shortcut for assembling statement text. Used
internally by all statement types in this package. Its one job is whitespace
discipline: every appended clause or fragment is separated from the preceding
text by exactly one space, with no doubling and no leading or trailing space.
*/
type Bui struct {
	Text []byte
}

// Returns inner text as a string, performing a free cast.
func (self Bui) String() string {
	return bytesToMutableString(self.Text)
}

// Adds a space unless the text is empty or already ends with a space.
func (self *Bui) Space() {
	self.Text = maybeAppendSpace(self.Text)
}

// Appends the provided string, delimiting it from the previous text with a
// space if necessary.
func (self *Bui) Str(val string) {
	self.Text = appendMaybeSpaced(self.Text, val)
}

/*
Appends a fragment, delimited from the preceding text by a space, if
necessary. Nil input is a nop: nothing will be appended.
*/
func (self *Bui) Expr(val Expr) {
	if val != nil {
		self.Space()
		self.Text = val.Append(self.Text)
	}
}

/*
Appends a comma-separated sequence of fragments, delimited from the preceding
text by a space. Mostly an internal tool for rendering projection, ordering,
and fetch lists.
*/
func (self *Bui) CommaExprs(vals ...Expr) {
	for ind, val := range vals {
		if ind > 0 {
			self.Text = append(self.Text, `,`...)
		}
		self.Expr(val)
	}
}
