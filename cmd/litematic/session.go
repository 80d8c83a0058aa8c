package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
	"github.com/arloliu/litematic/nbt"
)

// session is a loaded schematic waiting to be written back.
type session struct {
	path string
	doc  *nbt.Document
	mode format.ContainerMode
}

func openSession(path string) (*session, error) {
	printVerbose("Opening schematic: %s\n", path)

	doc, mode, err := litematic.Load(path, ioOptions()...)
	if err != nil {
		return nil, err
	}

	if !litematic.VerifyStructure(doc, ioOptions()...) {
		printWarn("%s is missing %s\n", path, strings.Join(litematic.MissingKeys(doc), ", "))
	}
	printVerbose("Container: %s\n", mode)

	return &session{path: path, doc: doc, mode: mode}, nil
}

// save backs up the original file if configured, writes the document in its
// original framing and verifies the result.
func (s *session) save(backup bool) error {
	if backup {
		compression, err := cfg.BackupCompression()
		if err != nil {
			return err
		}
		dst, err := litematic.Backup(s.path, compression)
		if err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		printInfo("Backup created: %s\n", dst)
	}

	if err := litematic.Save(s.doc, s.path, s.mode, ioOptions()...); err != nil {
		return err
	}
	printInfo("Saved %s (%s)\n", s.path, s.mode)

	if !cfg.VerifyAfterSave {
		return nil
	}

	report, err := litematic.VerifySaved(s.path, s.doc, ioOptions()...)
	if err != nil {
		return fmt.Errorf("failed to verify saved file: %w", err)
	}
	if !report.Match() {
		return fmt.Errorf("saved file %s does not match the edited document", s.path)
	}
	if !report.StructureOK() {
		printWarn("saved file is missing %s\n", strings.Join(report.Missing, ", "))
	}
	printVerbose("Verified fingerprint %016x\n", report.Actual)

	return nil
}

// prompt prints question and returns the next trimmed input line.
func prompt(in *bufio.Reader, question string) (string, error) {
	fmt.Fprint(stderr, question)

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but y or yes is a no.
func confirm(in *bufio.Reader, question string) (bool, error) {
	answer, err := prompt(in, question+" [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes", nil
}
