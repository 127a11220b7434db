package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func composeString(input string) (*Document, error) {
	var p yaml_parser_t
	if !yaml_parser_set_input_string(&p, []byte(input)) {
		return nil, parserError(&p)
	}
	doc, ok, err := yaml_composer_compose_one(&p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return doc, nil
}

var _ = Describe("composer", func() {
	It("composes a scalar document", func() {
		doc, err := composeString("hello\n")
		Expect(err).NotTo(HaveOccurred())
		root := doc.GetRootNode()
		Expect(doc.ScalarBytes(root)).To(Equal([]byte("hello")))
	})

	It("composes a mapping and resolves values by key", func() {
		doc, err := composeString("name: foo\ncount: 3\n")
		Expect(err).NotTo(HaveOccurred())
		root := doc.GetRootNode()
		Expect(doc.ScalarBytes(doc.MappingGetValue(root, []byte("name")))).To(Equal([]byte("foo")))
		Expect(doc.ScalarBytes(doc.MappingGetValue(root, []byte("count")))).To(Equal([]byte("3")))
	})

	It("resolves an alias to the node its anchor named", func() {
		doc, err := composeString("- &x foo\n- *x\n")
		Expect(err).NotTo(HaveOccurred())
		root := doc.GetRootNode()
		first := doc.SequenceGetItem(root, 0)
		second := doc.SequenceGetItem(root, 1)
		Expect(second).To(Equal(first))
	})

	It("errors on an alias to an undefined anchor", func() {
		_, err := composeString("- *missing\n")
		Expect(err).To(HaveOccurred())
	})

	It("errors on a duplicate anchor within one document", func() {
		_, err := composeString("- &x foo\n- &x bar\n")
		Expect(err).To(HaveOccurred())
	})

	It("pulls one document per call, leaving the stream positioned for the next", func() {
		var p yaml_parser_t
		Expect(yaml_parser_set_input_string(&p, []byte("a\n---\nb\n"))).To(BeTrue())

		doc1, ok, err := yaml_composer_compose_one(&p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(doc1.ScalarBytes(doc1.GetRootNode())).To(Equal([]byte("a")))

		doc2, ok, err := yaml_composer_compose_one(&p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(doc2.ScalarBytes(doc2.GetRootNode())).To(Equal([]byte("b")))

		_, ok, err = yaml_composer_compose_one(&p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("compose_all collects every document in the stream", func() {
		var p yaml_parser_t
		Expect(yaml_parser_set_input_string(&p, []byte("a\n---\nb\n---\nc\n"))).To(BeTrue())
		docs, err := yaml_composer_compose_all(&p)
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(3))
		Expect(docs[2].ScalarBytes(docs[2].GetRootNode())).To(Equal([]byte("c")))
	})
})
