package collection

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/objcore/errs"
	"github.com/sarchlab/objcore/naming"
	"github.com/sarchlab/objcore/tracking"
	"go.uber.org/mock/gomock"
)

type formMock struct {
	*CollectionBase
	naming.NamedBase
	naming.ScopedBase
}

func newFormMock(name string, authority *naming.Authority) *formMock {
	f := &formMock{NamedBase: naming.MakeNamedBase(name)}
	f.CollectionBase = NewCollectionBase(f, "fields", "buttons")
	f.SetAuthority(authority)

	return f
}

type anonymousHostMock struct {
	*CollectionBase
}

type fieldMock struct {
	tracking.TrackableBase
	naming.NamedBase
	naming.ScopedBase
	InitializerBase

	value    string
	initErr  error
	numInits int
}

func (f *fieldMock) InvokeInit() error {
	return f.Initialize(func() error {
		f.numInits++
		return f.initErr
	})
}

func (f *fieldMock) Clone() any {
	c := *f
	return &c
}

type plainFieldMock struct {
	tracking.TrackableBase
	naming.NamedBase
}

var _ = Describe("CollectionBase", func() {
	var (
		mockCtrl  *gomock.Controller
		authority *naming.Authority
		form      *formMock
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		authority = naming.MakeBuilder().WithMaxNameLength(40).Build()
		form = newFormMock("form", authority)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should declare collections once and in order", func() {
		form.DeclareCollection("fields")
		form.DeclareCollection("links")

		Expect(form.Namespaces()).To(Equal(
			[]string{"fields", "buttons", "links"}))
		Expect(form.Host()).To(BeIdenticalTo(form))
	})

	It("should add, get and remove items", func() {
		field := &fieldMock{}

		Expect(form.AddIntoCollection("name", field, "fields")).To(Succeed())
		Expect(form.HasInCollection("name", "fields")).To(BeTrue())
		Expect(form.HasInCollection("name", "buttons")).To(BeFalse())

		item, err := form.GetFromCollection("name", "fields")
		Expect(err).ToNot(HaveOccurred())
		Expect(item).To(BeIdenticalTo(field))

		Expect(form.RemoveFromCollection("name", "fields")).To(Succeed())
		Expect(form.HasInCollection("name", "fields")).To(BeFalse())
	})

	It("should keep insertion order", func() {
		Expect(form.AddIntoCollection("b", &fieldMock{}, "fields")).To(Succeed())
		Expect(form.AddIntoCollection("a", &fieldMock{}, "fields")).To(Succeed())
		Expect(form.AddIntoCollection("c", &fieldMock{}, "fields")).To(Succeed())
		Expect(form.RemoveFromCollection("a", "fields")).To(Succeed())

		c, err := form.Collection("fields")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Names()).To(Equal([]string{"b", "c"}))
		Expect(c.Len()).To(Equal(2))
		Expect(c.Items()).To(HaveLen(2))
	})

	It("should attach the item and give it a long name", func() {
		field := &fieldMock{}

		Expect(form.AddIntoCollection("surname", field, "fields")).
			To(Succeed())

		Expect(field.Owner()).To(BeIdenticalTo(form))
		Expect(field.ShortName()).To(Equal("surname"))
		Expect(field.Namespace()).To(Equal("fields"))
		Expect(field.Name()).To(Equal("form-fields_surname"))
		Expect(field.Authority()).To(BeIdenticalTo(authority))
	})

	It("should shorten long names", func() {
		field := &fieldMock{}

		err := form.AddIntoCollection(
			"very-long-and-annoying-name-which-will-be-shortened",
			field, "fields")

		Expect(err).ToNot(HaveOccurred())
		Expect(naming.Length(field.Name())).To(Equal(40))
		Expect(field.Name()).To(HaveSuffix("will-be-shortened"))
		Expect(authority.Unshorten(field.Name())).To(Equal(
			"form-fields_very-long-and-annoying-name-which-will-be-shortened"))
	})

	It("should keep a preset name", func() {
		field := &fieldMock{NamedBase: naming.MakeNamedBase("custom")}

		Expect(form.AddIntoCollection("surname", field, "fields")).
			To(Succeed())
		Expect(field.Name()).To(Equal("custom"))

		Expect(form.RemoveFromCollection("surname", "fields")).To(Succeed())
		Expect(field.Name()).To(Equal("custom"))
	})

	It("should reject a preset name that is too long", func() {
		field := &fieldMock{NamedBase: naming.MakeNamedBase(
			"a-preset-name-that-is-much-longer-than-forty-characters")}

		err := form.AddIntoCollection("surname", field, "fields")

		Expect(errs.IsKind(err, errs.NameTooLong)).To(BeTrue())
		Expect(form.HasInCollection("surname", "fields")).To(BeFalse())
		Expect(field.IsOwned()).To(BeFalse())
	})

	It("should not name items of an anonymous host", func() {
		host := &anonymousHostMock{}
		host.CollectionBase = NewCollectionBase(host, "fields")
		field := &fieldMock{}

		Expect(host.AddIntoCollection("surname", field, "fields")).
			To(Succeed())

		Expect(field.Owner()).To(BeIdenticalTo(host))
		Expect(field.Name()).To(BeEmpty())
		Expect(field.Authority()).To(BeNil())
	})

	It("should carry the authority to scoped items", func() {
		scope := &naming.ScopedBase{}

		Expect(form.AddIntoCollection("scope", scope, "fields")).To(Succeed())

		Expect(scope.Authority()).To(BeIdenticalTo(authority))
	})

	It("should store items that are not trackable", func() {
		Expect(form.AddIntoCollection("raw", 42, "fields")).To(Succeed())

		item, err := form.GetFromCollection("raw", "fields")
		Expect(err).ToNot(HaveOccurred())
		Expect(item).To(Equal(42))
	})

	It("should clear the owner and computed name on removal", func() {
		field := &fieldMock{}
		Expect(form.AddIntoCollection("surname", field, "fields")).
			To(Succeed())

		Expect(form.RemoveFromCollection("surname", "fields")).To(Succeed())

		Expect(field.IsOwned()).To(BeFalse())
		Expect(field.Name()).To(BeEmpty())
		Expect(field.ShortName()).To(Equal("surname"))

		Expect(form.AddIntoCollection("surname", field, "fields")).
			To(Succeed())
		Expect(field.Name()).To(Equal("form-fields_surname"))
	})

	Context("when the request is invalid", func() {
		It("should fail on an undeclared collection", func() {
			err := form.AddIntoCollection("x", &fieldMock{}, "links")
			Expect(errs.IsKind(err, errs.CollectionNotFound)).To(BeTrue())

			_, err = form.GetFromCollection("x", "links")
			Expect(errors.Is(err, errs.ErrCollectionNotFound)).To(BeTrue())

			err = form.RemoveFromCollection("x", "links")
			Expect(errs.IsKind(err, errs.CollectionNotFound)).To(BeTrue())

			Expect(form.HasInCollection("x", "links")).To(BeFalse())
		})

		It("should fail on an empty name", func() {
			err := form.AddIntoCollection("", &fieldMock{}, "fields")
			Expect(errs.IsKind(err, errs.EmptyName)).To(BeTrue())
		})

		It("should fail on a duplicated name", func() {
			first := &fieldMock{}
			second := &fieldMock{}

			Expect(form.AddIntoCollection("x", first, "fields")).To(Succeed())
			err := form.AddIntoCollection("x", second, "fields")

			Expect(errs.IsKind(err, errs.DuplicateName)).To(BeTrue())
			Expect(second.IsOwned()).To(BeFalse())

			item, _ := form.GetFromCollection("x", "fields")
			Expect(item).To(BeIdenticalTo(first))
		})

		It("should allow the same name in different collections", func() {
			Expect(form.AddIntoCollection("x", &fieldMock{}, "fields")).
				To(Succeed())
			Expect(form.AddIntoCollection("x", &fieldMock{}, "buttons")).
				To(Succeed())
		})

		It("should fail on missing elements", func() {
			_, err := form.GetFromCollection("x", "fields")
			Expect(errs.IsKind(err, errs.ElementNotFound)).To(BeTrue())

			err = form.RemoveFromCollection("x", "fields")
			Expect(errs.IsKind(err, errs.ElementNotFound)).To(BeTrue())
		})

		It("should not steal an item from another owner", func() {
			other := newFormMock("other", authority)
			field := &fieldMock{}
			Expect(other.AddIntoCollection("surname", field, "fields")).
				To(Succeed())

			err := form.AddIntoCollection("surname", field, "fields")

			Expect(errs.IsKind(err, errs.OwnerAlreadySet)).To(BeTrue())
			Expect(form.HasInCollection("surname", "fields")).To(BeFalse())
			Expect(field.Owner()).To(BeIdenticalTo(other))
			Expect(field.Name()).To(Equal("other-fields_surname"))
		})
	})

	Context("when items need initialization", func() {
		It("should initialize an item once", func() {
			field := &fieldMock{}

			Expect(form.AddIntoCollection("a", field, "fields")).To(Succeed())
			Expect(form.RemoveFromCollection("a", "fields")).To(Succeed())
			Expect(form.AddIntoCollection("a", field, "fields")).To(Succeed())

			Expect(field.numInits).To(Equal(1))
			Expect(field.IsInitialized()).To(BeTrue())
		})

		It("should not initialize an initialized item", func() {
			init := NewMockInitializer(mockCtrl)
			init.EXPECT().IsInitialized().Return(true)

			Expect(form.AddIntoCollection("a", init, "fields")).To(Succeed())
		})

		It("should invoke init on a fresh item", func() {
			init := NewMockInitializer(mockCtrl)
			init.EXPECT().IsInitialized().Return(false)
			init.EXPECT().InvokeInit().Return(nil)

			Expect(form.AddIntoCollection("a", init, "fields")).To(Succeed())
			Expect(form.HasInCollection("a", "fields")).To(BeTrue())
		})

		It("should roll back when init fails", func() {
			initErr := errors.New("init failed")
			init := NewMockInitializer(mockCtrl)
			init.EXPECT().IsInitialized().Return(false)
			init.EXPECT().InvokeInit().Return(initErr)

			err := form.AddIntoCollection("a", init, "fields")

			Expect(err).To(BeIdenticalTo(initErr))
			Expect(form.HasInCollection("a", "fields")).To(BeFalse())
			Expect(form.AddIntoCollection("a", &fieldMock{}, "fields")).
				To(Succeed())
		})

		It("should detach a trackable item when init fails", func() {
			initErr := errors.New("init failed")
			field := &fieldMock{initErr: initErr}

			err := form.AddIntoCollection("a", field, "fields")

			Expect(err).To(BeIdenticalTo(initErr))
			Expect(field.IsOwned()).To(BeFalse())
			Expect(field.IsInitialized()).To(BeFalse())
			Expect(field.Name()).To(BeEmpty())

			field.initErr = nil
			Expect(form.AddIntoCollection("a", field, "fields")).To(Succeed())
			Expect(field.IsInitialized()).To(BeTrue())
			Expect(field.numInits).To(Equal(2))
		})
	})

	Context("when attaching is rolled back", func() {
		It("should give back the previous authority when init fails", func() {
			own := naming.MakeBuilder().Build()
			field := &fieldMock{initErr: errors.New("init failed")}
			field.SetAuthority(own)

			err := form.AddIntoCollection("a", field, "fields")

			Expect(err).To(HaveOccurred())
			Expect(field.Authority()).To(BeIdenticalTo(own))
		})

		It("should clear a carried authority when init fails", func() {
			field := &fieldMock{initErr: errors.New("init failed")}

			err := form.AddIntoCollection("a", field, "fields")

			Expect(err).To(HaveOccurred())
			Expect(field.Authority()).To(BeNil())
		})

		It("should give back the previous authority on a naming failure",
			func() {
				own := naming.MakeBuilder().Build()
				field := &fieldMock{NamedBase: naming.MakeNamedBase(
					"a-preset-name-that-is-much-longer-than-forty-characters")}
				field.SetAuthority(own)

				err := form.AddIntoCollection("a", field, "fields")

				Expect(errs.IsKind(err, errs.NameTooLong)).To(BeTrue())
				Expect(field.Authority()).To(BeIdenticalTo(own))
			})

		It("should keep the host authority after a successful add", func() {
			own := naming.MakeBuilder().Build()
			field := &fieldMock{}
			field.SetAuthority(own)

			Expect(form.AddIntoCollection("a", field, "fields")).To(Succeed())

			Expect(field.Authority()).To(BeIdenticalTo(authority))
		})
	})

	Context("when detaching", func() {
		It("should remove the item from its owner", func() {
			field := &plainFieldMock{}
			Expect(form.AddIntoCollection("surname", field, "fields")).
				To(Succeed())

			Expect(tracking.Detach(field)).To(Succeed())

			Expect(form.HasInCollection("surname", "fields")).To(BeFalse())
			Expect(field.IsOwned()).To(BeFalse())

			err := tracking.Detach(field)
			Expect(errs.IsKind(err, errs.NotOwned)).To(BeTrue())
		})
	})

	Context("when cloning", func() {
		It("should duplicate cloners and share the rest", func() {
			field := &fieldMock{value: "a"}
			plain := &plainFieldMock{}
			Expect(form.AddIntoCollection("surname", field, "fields")).
				To(Succeed())
			Expect(form.AddIntoCollection("ok", plain, "buttons")).
				To(Succeed())

			copied := &formMock{NamedBase: naming.MakeNamedBase("copy")}
			copied.CollectionBase = form.CloneFor(copied)

			Expect(copied.Namespaces()).To(Equal(form.Namespaces()))
			Expect(copied.Host()).To(BeIdenticalTo(copied))

			item, err := copied.GetFromCollection("surname", "fields")
			Expect(err).ToNot(HaveOccurred())
			clone := item.(*fieldMock)
			Expect(clone).ToNot(BeIdenticalTo(field))
			Expect(clone.value).To(Equal("a"))
			Expect(clone.Owner()).To(BeIdenticalTo(copied))
			Expect(clone.ShortName()).To(Equal("surname"))
			Expect(field.Owner()).To(BeIdenticalTo(form))

			shared, err := copied.GetFromCollection("ok", "buttons")
			Expect(err).ToNot(HaveOccurred())
			Expect(shared).To(BeIdenticalTo(plain))
		})

		It("should keep the collections of the clone independent", func() {
			Expect(form.AddIntoCollection("a", &fieldMock{}, "fields")).
				To(Succeed())

			copied := &formMock{}
			copied.CollectionBase = form.CloneFor(copied)
			Expect(copied.RemoveFromCollection("a", "fields")).To(Succeed())

			Expect(form.HasInCollection("a", "fields")).To(BeTrue())
			Expect(copied.HasInCollection("a", "fields")).To(BeFalse())
		})
	})
})
