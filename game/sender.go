package game

import (
	"fmt"
	"io"
)

// Sender is a sink for standings tables and announcements.
type Sender interface {
	SendNormal(str string) error
	SendTable(str string) error
}

// WriterSender prints to a terminal or any other writer.
type WriterSender struct {
	w io.Writer
}

func NewWriterSender(w io.Writer) *WriterSender {
	return &WriterSender{w: w}
}

func (s *WriterSender) SendNormal(str string) error {
	_, err := fmt.Fprintln(s.w, str)
	return err
}

func (s *WriterSender) SendTable(str string) error {
	_, err := fmt.Fprint(s.w, str)
	return err
}
