package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"jwwconv/jww"
	"jwwconv/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Info        *InfoCmd        `arg:"subcommand:info"`
		Validate    *ValidateCmd    `arg:"subcommand:validate"`
	}
	InteractiveCmd struct{}
	ConvertCmd     struct {
		From     string `arg:"required" help:"path to source drawing" placeholder:"drawing.jww"`
		To       string `arg:"required" help:"path to destination file" placeholder:"drawing.json"`
		Force    bool   `help:"overwrite the destination file"`
		Strict   bool   `help:"abort on the first damaged entity record instead of skipping it"`
		Encoding string `help:"legacy text codec (default shift_jis)"`
	}
	InfoCmd struct {
		Path string `arg:"positional,required" help:"path to drawing" placeholder:"drawing.jww"`
	}
	ValidateCmd struct {
		Path string `arg:"positional,required" help:"path to drawing" placeholder:"drawing.jww"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to convert JWW (JW_CAD's proprietary binary drawing format)",
			"to \"standard\" JSON in the command line.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartConverting(cmd ConvertCmd) {
	if !CheckExistence(cmd.From) {
		println("Source file does not exist!")
		return
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return
	}
	fileBytes, err := os.ReadFile(cmd.From)
	if err != nil {
		println("Error happened reading file at: " + cmd.From)
		return
	}
	if !jww.Validate(fileBytes) {
		println("The file does not look like a JWW drawing: " + cmd.From)
		return
	}

	options := jww.DefaultParseOptions()
	options.StrictMode = cmd.Strict
	options.Encoding = cmd.Encoding
	document, err := jww.Parse(fileBytes, options)
	if err != nil {
		println("Error happened decoding the drawing: " + err.Error())
		return
	}
	documentBytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		println("Error happened encoding the document to JSON")
		return
	}
	if err := os.WriteFile(cmd.To, documentBytes, 0644); err != nil {
		println("Error happened writing to file at: " + cmd.To)
		return
	}
	for _, diagnostic := range document.Diagnostics {
		println("Recovered: " + diagnostic.Message)
	}
	println("Done converting. Please check your result file at: " + cmd.To)
}

func StartInfo(path string) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		println("Error happened reading file at: " + path)
		return
	}
	info := jww.GetFileInfo(fileBytes)
	fmt.Printf("Signature: %s\n", info.Signature)
	fmt.Printf("Version:   %d\n", info.Version)
	fmt.Printf("Size:      %d bytes\n", info.Size)
}

func StartValidating(path string) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		println("Error happened reading file at: " + path)
		os.Exit(1)
	}
	if !jww.Validate(fileBytes) {
		println("Not a supported JWW drawing: " + path)
		os.Exit(1)
	}
	println("Looks like a valid JWW drawing: " + path)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	switch {
	case args.Convert != nil:
		StartConverting(*args.Convert)
	case args.Info != nil:
		StartInfo(args.Info.Path)
	case args.Validate != nil:
		StartValidating(args.Validate.Path)
	default:
		ui.Start()
	}
}
