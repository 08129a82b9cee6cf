package subst_test

import (
	"fmt"

	"github.com/mikaza-sukaza/i18ntool/pkg/subst"
)

func ExampleRuleSet_Apply() {
	// Compile an ordered catalog once, then apply it to any number of
	// texts. Order matters: later rules see the output of earlier ones.
	rules, err := subst.Compile([]subst.Rule{
		{
			Name:    "propertyForm.capacity",
			Pattern: "<FormLabel>Capacity</FormLabel>",
			Replace: "<FormLabel>{t('propertyForm.capacity')}</FormLabel>",
		},
		{
			Name:    "propertyForm.addUnit",
			Regex:   true,
			Pattern: `Add Unit\s*</Button>`,
			Replace: "{t('propertyForm.addUnit')}</Button>",
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	src := "<FormLabel>Capacity</FormLabel>\n<Button>Add Unit\n</Button>"
	out, report := rules.Apply(src)

	fmt.Println(out)
	fmt.Printf("rules fired: %d, replacements: %d\n", report.Fired(), report.TotalReplacements())

	// Output:
	// <FormLabel>{t('propertyForm.capacity')}</FormLabel>
	// <Button>{t('propertyForm.addUnit')}</Button>
	// rules fired: 2, replacements: 2
}

func ExampleCompile_unresolvedReference() {
	// A template citing a capture group the pattern does not define is
	// rejected at compile time, before any text is touched.
	_, err := subst.Compile([]subst.Rule{
		{Name: "bad", Regex: true, Pattern: `<FormLabel>(\w+)</FormLabel>`, Replace: "<FormLabel>$2</FormLabel>"},
	})
	fmt.Printf("Error: %v\n", err)

	// Output:
	// Error: rule "bad": template references undefined capture group $2
}
