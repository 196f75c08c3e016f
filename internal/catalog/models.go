package catalog

import "ankibridge/internal/domain"

// modelActions covers note type (model), template and field schema editing.
func modelActions() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "modelNames",
			Description: "Returns the complete list of model names for the current user.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "modelNamesAndIds",
			Description: "Returns an object mapping each model name to its model ID.",
			InputSchema: obj(nil),
			Format:      domain.FormatJSON(),
		},
		{
			Name:        "findModelsById",
			Description: "Returns the definitions of the models with the given IDs.",
			InputSchema: obj(map[string]domain.Schema{
				"modelIds": array("Model IDs to look up.", integer("")),
			}, "modelIds"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "findModelsByName",
			Description: "Returns the definitions of the models with the given names.",
			InputSchema: obj(map[string]domain.Schema{
				"modelNames": stringList("Model names to look up."),
			}, "modelNames"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelFieldNames",
			Description: "Returns the field names of the given model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelFieldDescriptions",
			Description: "Returns the field descriptions of the given model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelFieldFonts",
			Description: "Returns an object mapping each field of the given model to its editor font and size.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelFieldsOnTemplates",
			Description: "Returns, for each template of the given model, which fields appear on the question and answer side.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "createModel",
			Description: "Creates a new model with the given fields and card templates. Returns the created model object.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":     str("Name of the new model."),
				"inOrderFields": stringList("Field names, in order."),
				"cardTemplates": array("Card templates; Name defaults to \"Card 1\", \"Card 2\", and so on.", cardTemplate("")),
				"css":           str("Model styling; omit for the default CSS."),
				"isCloze":       boolean("Create a cloze model (default false)."),
			}, "modelName", "inOrderFields", "cardTemplates"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelTemplates",
			Description: "Returns an object mapping each template of the given model to its front and back content.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "modelStyling",
			Description: "Returns the CSS styling of the given model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
			}, "modelName"),
			Format: domain.FormatJSON(),
		},
		{
			Name:        "updateModelTemplates",
			Description: "Modifies the templates of an existing model by name. Only templates and sides that are specified are changed.",
			InputSchema: obj(map[string]domain.Schema{
				"model": obj(map[string]domain.Schema{
					"name":      str("Name of the model to update."),
					"templates": freeform("Mapping of template names to objects with Front and/or Back."),
				}, "name", "templates"),
			}, "model"),
			Format: domain.FormatAck("Model templates updated."),
		},
		{
			Name:        "updateModelStyling",
			Description: "Replaces the CSS styling of an existing model by name.",
			InputSchema: obj(map[string]domain.Schema{
				"model": obj(map[string]domain.Schema{
					"name": str("Name of the model to update."),
					"css":  str("New CSS styling."),
				}, "name", "css"),
			}, "model"),
			Format: domain.FormatAck("Model styling updated."),
		},
		{
			Name:        "findAndReplaceInModels",
			Description: "Finds and replaces a string in an existing model's templates and/or CSS. Returns the number of replacements.",
			InputSchema: obj(map[string]domain.Schema{
				"model": obj(map[string]domain.Schema{
					"modelName":   str("Name of the model to modify."),
					"findText":    str("Text to find."),
					"replaceText": str("Replacement text."),
					"front":       boolean("Replace in front templates."),
					"back":        boolean("Replace in back templates."),
					"css":         boolean("Replace in the CSS."),
				}, "modelName", "findText", "replaceText"),
			}, "model"),
			Format: domain.FormatLine("Replaced %v occurrence(s)."),
		},
		{
			Name:        "modelTemplateRename",
			Description: "Renames a template in an existing model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":       str("Name of the model."),
				"oldTemplateName": str("Current template name."),
				"newTemplateName": str("New template name."),
			}, "modelName", "oldTemplateName", "newTemplateName"),
			Format: domain.FormatAck("Template renamed."),
		},
		{
			Name:        "modelTemplateReposition",
			Description: "Repositions a template in an existing model. The new index starts at 0.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":    str("Name of the model."),
				"templateName": str("Name of the template to move."),
				"index":        integer("New position, starting at 0."),
			}, "modelName", "templateName", "index"),
			Format: domain.FormatAck("Template repositioned."),
		},
		{
			Name:        "modelTemplateAdd",
			Description: "Adds a template to an existing model by name.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"template":  cardTemplate("Template to add; requires Name, Front and Back."),
			}, "modelName", "template"),
			Format: domain.FormatAck("Template added."),
		},
		{
			Name:        "modelTemplateRemove",
			Description: "Removes a template from an existing model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":    str("Name of the model."),
				"templateName": str("Name of the template to remove."),
			}, "modelName", "templateName"),
			Format: domain.FormatAck("Template removed."),
		},
		{
			Name:        "modelFieldRename",
			Description: "Renames a field in an existing model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":    str("Name of the model."),
				"oldFieldName": str("Current field name."),
				"newFieldName": str("New field name."),
			}, "modelName", "oldFieldName", "newFieldName"),
			Format: domain.FormatAck("Field renamed."),
		},
		{
			Name:        "modelFieldReposition",
			Description: "Repositions a field within an existing model. The new index starts at 0.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"fieldName": str("Name of the field to move."),
				"index":     integer("New position, starting at 0."),
			}, "modelName", "fieldName", "index"),
			Format: domain.FormatAck("Field repositioned."),
		},
		{
			Name:        "modelFieldAdd",
			Description: "Adds a field to an existing model, optionally at a given index.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"fieldName": str("Name of the new field."),
				"index":     integer("Position of the new field, starting at 0; defaults to the end."),
			}, "modelName", "fieldName"),
			Format: domain.FormatAck("Field added."),
		},
		{
			Name:        "modelFieldRemove",
			Description: "Removes a field from an existing model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"fieldName": str("Name of the field to remove."),
			}, "modelName", "fieldName"),
			Format: domain.FormatAck("Field removed."),
		},
		{
			Name:        "modelFieldSetFont",
			Description: "Sets the editor font for a field within a model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"fieldName": str("Name of the field."),
				"font":      str("Font name, e.g. \"Courier\"."),
			}, "modelName", "fieldName", "font"),
			Format: domain.FormatAck("Field font set."),
		},
		{
			Name:        "modelFieldSetFontSize",
			Description: "Sets the editor font size for a field within a model.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName": str("Name of the model."),
				"fieldName": str("Name of the field."),
				"fontSize":  integer("Font size in points."),
			}, "modelName", "fieldName", "fontSize"),
			Format: domain.FormatAck("Field font size set."),
		},
		{
			Name:        "modelFieldSetDescription",
			Description: "Sets the description (placeholder text) for a field within a model. Returns false on older Anki versions without field descriptions.",
			InputSchema: obj(map[string]domain.Schema{
				"modelName":   str("Name of the model."),
				"fieldName":   str("Name of the field."),
				"description": str("New field description."),
			}, "modelName", "fieldName", "description"),
			Format: domain.FormatBool("Field description set.", "Failed to set field description (requires a newer Anki)."),
		},
	}
}
