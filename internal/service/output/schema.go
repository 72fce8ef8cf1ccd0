package output

// Schema is the JSON Schema (Draft 2020-12) for the JSON report written by
// mood analyze --format=json. Ratios are null when undefined.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/panbanda/mood/report.schema.json",
  "title": "MOOD Analysis Report",
  "description": "Output schema for mood analyze --format=json",
  "type": "object",
  "required": ["generated_at", "metrics", "classes", "summary"],
  "properties": {
    "generated_at": {
      "type": "string",
      "description": "RFC 3339 time the analysis was produced"
    },
    "metrics": { "$ref": "#/$defs/Metrics" },
    "classes": {
      "type": "array",
      "items": { "$ref": "#/$defs/ClassStats" }
    },
    "summary": { "$ref": "#/$defs/Summary" },
    "skipped": {
      "type": "array",
      "items": { "$ref": "#/$defs/SkippedFile" }
    }
  },
  "$defs": {
    "Ratio": {
      "description": "A ratio in [0, 1], or null when its denominator is zero",
      "oneOf": [
        { "type": "number", "minimum": 0, "maximum": 1 },
        { "type": "null" }
      ]
    },
    "Count": {
      "type": "integer",
      "minimum": 0
    },
    "Metrics": {
      "type": "object",
      "required": ["mhf", "ahf", "mif", "aif", "pof", "counts"],
      "properties": {
        "mhf": { "$ref": "#/$defs/Ratio", "description": "Method Hiding Factor" },
        "ahf": { "$ref": "#/$defs/Ratio", "description": "Attribute Hiding Factor" },
        "mif": { "$ref": "#/$defs/Ratio", "description": "Method Inheritance Factor" },
        "aif": { "$ref": "#/$defs/Ratio", "description": "Attribute Inheritance Factor" },
        "pof": { "$ref": "#/$defs/Ratio", "description": "Polymorphism Factor" },
        "counts": { "$ref": "#/$defs/Counts" }
      }
    },
    "Counts": {
      "type": "object",
      "required": [
        "public_methods", "private_methods", "public_fields", "private_fields",
        "inherited_methods", "inherited_fields", "overridden_methods",
        "available_methods", "available_fields", "override_opportunities"
      ],
      "properties": {
        "public_methods": { "$ref": "#/$defs/Count" },
        "private_methods": { "$ref": "#/$defs/Count" },
        "public_fields": { "$ref": "#/$defs/Count" },
        "private_fields": { "$ref": "#/$defs/Count" },
        "inherited_methods": { "$ref": "#/$defs/Count" },
        "inherited_fields": { "$ref": "#/$defs/Count" },
        "overridden_methods": { "$ref": "#/$defs/Count" },
        "available_methods": { "$ref": "#/$defs/Count" },
        "available_fields": { "$ref": "#/$defs/Count" },
        "override_opportunities": { "$ref": "#/$defs/Count" }
      }
    },
    "ClassStats": {
      "type": "object",
      "required": [
        "fqn", "name", "path", "parent_resolved", "noc", "descendants", "dit",
        "own_methods", "own_fields", "inherited_methods", "inherited_fields", "overridden_methods"
      ],
      "properties": {
        "fqn": { "type": "string", "minLength": 1 },
        "name": { "type": "string", "minLength": 1 },
        "package": { "type": "string" },
        "path": { "type": "string" },
        "declared_parent": { "type": "string", "description": "Superclass as written in the source" },
        "parent": { "type": "string", "description": "Superclass after import qualification" },
        "parent_resolved": { "type": "boolean" },
        "noc": { "$ref": "#/$defs/Count", "description": "Number of direct children" },
        "children": {
          "type": "array",
          "items": { "type": "string" }
        },
        "descendants": { "$ref": "#/$defs/Count" },
        "descendant_names": {
          "type": "array",
          "items": { "type": "string" },
          "description": "Fully-qualified names of every transitive subclass"
        },
        "dit": { "$ref": "#/$defs/Count", "description": "Depth of inheritance tree" },
        "own_methods": { "$ref": "#/$defs/Count" },
        "own_fields": { "$ref": "#/$defs/Count" },
        "inherited_methods": { "$ref": "#/$defs/Count" },
        "inherited_fields": { "$ref": "#/$defs/Count" },
        "overridden_methods": { "$ref": "#/$defs/Count" }
      }
    },
    "Summary": {
      "type": "object",
      "required": [
        "total_files", "parsed_files", "skipped_files", "total_classes", "roots",
        "unresolved_parents", "duplicate_classes", "max_dit", "max_noc"
      ],
      "properties": {
        "total_files": { "$ref": "#/$defs/Count" },
        "parsed_files": { "$ref": "#/$defs/Count" },
        "skipped_files": { "$ref": "#/$defs/Count" },
        "total_classes": { "$ref": "#/$defs/Count" },
        "roots": { "$ref": "#/$defs/Count" },
        "unresolved_parents": { "$ref": "#/$defs/Count" },
        "duplicate_classes": { "$ref": "#/$defs/Count" },
        "max_dit": { "$ref": "#/$defs/Count" },
        "max_noc": { "$ref": "#/$defs/Count" },
        "fingerprint": {
          "type": "string",
          "pattern": "^[0-9a-f]{32}$",
          "description": "BLAKE3 digest over the contents of the parsed files"
        }
      }
    },
    "SkippedFile": {
      "type": "object",
      "required": ["path", "reason"],
      "properties": {
        "path": { "type": "string" },
        "reason": { "type": "string" }
      }
    }
  }
}`
