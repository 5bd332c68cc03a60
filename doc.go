// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

/*
Package umldiag renders PlantUML class diagrams from object-schema models.

The package derives deterministic diagram notation from a resolved schema
model (classes, fields, enumerations and induced relationships), optionally
restricted to the classes reachable from a seed set, and can rasterize the
notation through a Kroki rendering service.

Generate a full-model diagram from a schema file:

	model, err := umldiag.LoadSchemaFile("schema.yaml")
	if err != nil {
		return err
	}

	diagram, err := umldiag.Generate(model, umldiag.Options{})
	if err != nil {
		return err
	}

	fmt.Println(diagram)

Restrict the diagram to classes reachable from a seed set:

	diagram, err := umldiag.Generate(model, umldiag.Options{
		Classes: []string{"Person"},
	})
	if err != nil {
		return err
	}

	fmt.Println(diagram)

Render an image into a directory; the file is named after the schema:

	renderer := umldiag.NewKrokiRenderer(umldiag.RenderOptions{
		Server:  "http://localhost:8000",
		Format:  umldiag.FormatSVG,
		Timeout: 10 * time.Second,
	})

	path, err := umldiag.WriteImage(ctx, renderer, model, umldiag.Options{}, "out", umldiag.FormatSVG)
	if err != nil {
		return err
	}

	fmt.Println(path)

Build a model directly from in-memory schema values:

	model, err := umldiag.NewModel(&umldiag.Schema{
		Name: "Example",
		Classes: []*umldiag.Class{
			{Name: "Person", Fields: []umldiag.Field{
				{Name: "id", Range: "string", Required: true},
			}},
		},
	})
	if err != nil {
		return err
	}
*/
package umldiag
