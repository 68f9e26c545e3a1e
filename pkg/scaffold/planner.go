package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/envfile"
)

const (
	// PackageJSON is the path of the generated manifest
	PackageJSON = "package.json"

	// TSConfig is the path of the generated compiler configuration
	TSConfig = "tsconfig.json"

	// EnvFile is the path of the generated environment file
	EnvFile = consts.DefaultEnvFile
)

type (
	manifest struct {
		Name        string          `json:"name"`
		Version     string          `json:"version"`
		Description string          `json:"description"`
		Main        string          `json:"main"`
		Type        string          `json:"type"`
		Scripts     manifestScripts `json:"scripts"`
		Keywords    []string        `json:"keywords"`
		Author      string          `json:"author"`
		License     string          `json:"license"`
	}

	manifestScripts struct {
		Dev   string `json:"dev"`
		Build string `json:"build"`
		Start string `json:"start"`
	}

	tsconfig struct {
		CompilerOptions compilerOptions `json:"compilerOptions"`
		Include         []string        `json:"include"`
		Exclude         []string        `json:"exclude"`
	}

	compilerOptions struct {
		Target                           string `json:"target"`
		Module                           string `json:"module"`
		ModuleResolution                 string `json:"moduleResolution"`
		EsModuleInterop                  bool   `json:"esModuleInterop"`
		AllowSyntheticDefaultImports     bool   `json:"allowSyntheticDefaultImports"`
		Strict                           bool   `json:"strict"`
		SkipLibCheck                     bool   `json:"skipLibCheck"`
		ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
		OutDir                           string `json:"outDir"`
		RootDir                          string `json:"rootDir"`
		ResolveJSONModule                bool   `json:"resolveJsonModule"`
	}
)

// Plan returns the documents generated for a new project: package.json,
// tsconfig.json and .env. It performs no I/O and returns byte-identical output
// for identical answers.
//
// The manifest deliberately lists no dependencies; they are added by the
// package manager at install time so versions are current.
func Plan(answers ProjectAnswers) Documents {
	return newDocuments(
		Document{Path: PackageJSON, Content: renderJSON(newManifest(answers.ProjectName))},
		Document{Path: TSConfig, Content: renderJSON(newTSConfig())},
		Document{Path: EnvFile, Content: renderEnv(answers)},
	)
}

func newManifest(name string) manifest {
	return manifest{
		Name:        name,
		Version:     "1.0.0",
		Description: "",
		Main:        "dist/index.js",
		Type:        "module",
		Scripts: manifestScripts{
			Dev:   "tsx watch src/index.ts",
			Build: "tsc",
			Start: "node dist/index.js",
		},
		Keywords: []string{},
		Author:   "",
		License:  "MIT",
	}
}

func newTSConfig() tsconfig {
	return tsconfig{
		CompilerOptions: compilerOptions{
			Target:                           "ES2022",
			Module:                           "ESNext",
			ModuleResolution:                 "node",
			EsModuleInterop:                  true,
			AllowSyntheticDefaultImports:     true,
			Strict:                           true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
			OutDir:                           "./dist",
			RootDir:                          "./src",
			ResolveJSONModule:                true,
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "dist", "public"},
	}
}

func renderJSON(v any) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	// Only fixed struct types are encoded here, so this cannot fail.
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("scaffold: encoding %T: %v", v, err))
	}

	return buf.Bytes()
}

func renderEnv(a ProjectAnswers) []byte {
	var buf bytes.Buffer
	line := func(key, value string) {
		buf.WriteString(envfile.FormatLine(key, value))
		buf.WriteByte('\n')
	}

	buf.WriteString("# Database Configuration\n")
	line(consts.EnvDBHost, a.DBHost)
	line(consts.EnvDBPort, strconv.Itoa(a.DBPort))
	line(consts.EnvDBUser, a.DBUser)
	line(consts.EnvDBPassword, a.DBPassword)
	line(consts.EnvDBName, a.DBName)

	buf.WriteString("\n# Server Configuration\n")
	line(consts.EnvPort, strconv.Itoa(consts.DefaultAppPort))
	line(consts.EnvNodeEnv, consts.DefaultNodeEnv)

	return buf.Bytes()
}
